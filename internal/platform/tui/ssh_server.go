package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// SSHServerConfig configures the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // Generated on first start; ~/.flappy/host_key when empty
	IdleTimeout time.Duration // Connections without input are closed after this
	MaxSessions int           // Concurrent players, unlimited when zero
	TickRate    int           // Simulation rate of every session

	// Selection is the speed and skin each menu starts on.
	Selection config.Selection

	// Store is shared by every session and owned by the caller. May be nil.
	Store *storage.Store

	Logger *log.Logger
}

// DefaultSSHServerConfig listens on :23234 and drops players idle for
// half an hour.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 32,
		TickRate:    core.DefaultTickRate,
	}
}

// SSHServer serves the menu and games over SSH, one Bubble Tea program
// per connection.
type SSHServer struct {
	cfg    SSHServerConfig
	srv    *ssh.Server
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares a server; nothing listens until Serve.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	s := &SSHServer{cfg: cfg, logger: cfg.Logger}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "flappy-ssh"})
	}

	keyPath := cfg.HostKeyPath
	if keyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("ssh: cannot locate host key: %w", err)
		}
		keyPath = filepath.Join(home, ".flappy", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: admit, then require a terminal, then play.
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.program),
			activeterm.Middleware(),
			s.admit,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: %w", err)
	}
	s.srv = srv
	return s, nil
}

// program builds the session model for a connection that has a terminal.
func (s *SSHServer) program(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	model := NewSessionModel(cfg, s.cfg.Selection, ModelOptions{
		Store:  s.cfg.Store,
		Logger: s.logger.With("user", sess.User()),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// admit enforces MaxSessions and logs each connection's lifetime.
func (s *SSHServer) admit(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		if limit := s.cfg.MaxSessions; limit > 0 && int(n) > limit {
			l.Warn("session refused, server full", "limit", limit)
			wish.Fatalln(sess, "The arcade is full, try again in a bit.")
			return
		}

		start := time.Now()
		l.Info("session started", "active", n)
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// Serve accepts connections until ctx is done, then shuts down, giving
// running sessions ten seconds to finish.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.Active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh: shutdown: %w", err)
	}
	return nil
}
