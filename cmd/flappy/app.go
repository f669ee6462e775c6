package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Best-score storage kinds
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
	storeNone   = "none"
)

// saveDataApp names the save-data directory of the file store.
const saveDataApp = "flappy-arcade"

// app holds the collaborators shared by the commands.
type app struct {
	logger    *log.Logger
	selection config.Selection
	store     *storage.Store // Score history, nil unless --store=sqlite succeeded
	best      storage.BestBackend
	player    *audio.Player
	watcher   *config.Watcher
	closers   []io.Closer
}

// setup builds the app from the global flags and wires it into the game
// package. logOut receives logs when --log-file is not set.
func setup(logOut io.Writer) (*app, error) {
	a := &app{}

	logger, err := a.openLogger(logOut)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	flappy.SetLogger(logger)

	a.selection = config.Selection{Speed: config.SpeedPreset(flagSpeed), Skin: flagSkin}
	probe := config.DefaultFlappyConfig()
	if err := a.selection.Apply(&probe); err != nil {
		a.close()
		return nil, err
	}
	flappy.SetConfigPath(flagConfig)
	flappy.SetSelection(a.selection)

	a.openStorage()
	if a.best != nil {
		backend := a.best
		flappy.SetBestStores(func(gameID string) flappy.BestScoreStore {
			return storage.BestFor(backend, gameID)
		})
	}

	if !flagMute {
		p := audio.NewPlayer()
		if err := p.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			a.player = p
			flappy.SetAudio(p)
		}
	}

	if flagWatch {
		a.openWatcher()
	}
	return a, nil
}

func (a *app) openLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "flappy",
	}), nil
}

// openStorage opens the best-score backend selected by --store. A SQLite
// failure falls back to the file store so best scores still persist.
func (a *app) openStorage() {
	switch flagStore {
	case storeNone:
		return
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err == nil {
			a.store = store
			a.best = store
			a.closers = append(a.closers, store)
			return
		}
		a.logger.Warn("could not open scores database, using save data", "path", flagDBPath, "err", err)
	case storeFile:
	default:
		a.logger.Warn("unknown --store, using save data", "store", flagStore)
	}

	data, err := storage.OpenSaveData(saveDataApp)
	if err != nil {
		a.logger.Warn("best scores will not be saved", "err", err)
		return
	}
	a.best = data
}

func (a *app) openWatcher() {
	path := config.Resolve(flagConfig)
	if path == "" {
		a.logger.Warn("--watch needs a config file; run 'flappy config init' to create one")
		return
	}
	w, err := config.Watch(path)
	if err != nil {
		a.logger.Warn("cannot watch config", "path", path, "err", err)
		return
	}
	a.logger.Info("watching config", "path", path)
	a.watcher = w
	a.closers = append(a.closers, w)
}

// bestFor returns the best-score store of a game, or nil without a backend.
func (a *app) bestFor(gameID string) flappy.BestScoreStore {
	if a.best == nil {
		return nil
	}
	return storage.BestFor(a.best, gameID)
}

func (a *app) close() {
	if a.player != nil {
		a.player.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.logger != nil {
			a.logger.Debug("close failed", "err", err)
		}
	}
}
