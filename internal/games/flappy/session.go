package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// FrameDuration is the reference frame all per-frame constants are tuned for.
const FrameDuration = time.Second / 60

// MaxFrameStep bounds the time a single Tick may simulate.
const MaxFrameStep = 4 * FrameDuration

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Cue is an audio event emitted by the session.
type Cue int

const (
	CueJump Cue = iota
	CueCoin
	CueCrash
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCoin:
		return "coin"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// RenderSink receives the authoritative state after every Tick.
type RenderSink interface {
	Render(Snapshot)
}

// AudioSink plays cues. Play must not block.
type AudioSink interface {
	Play(Cue)
}

// BestScoreStore persists the best score of one game variant.
type BestScoreStore interface {
	ReadBest() (int, error)
	WriteBest(score int) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for phase transitions and store failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAudio sets the audio cue sink.
func WithAudio(a AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithRenderSink sets the sink notified after every Tick.
func WithRenderSink(r RenderSink) Option {
	return func(s *Session) { s.render = r }
}

// WithBestStore sets the best-score store.
func WithBestStore(b BestScoreStore) Option {
	return func(s *Session) { s.store = b }
}

// WithSeed seeds the obstacle RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// Session runs one player's game: it owns the body, the world, both
// generators and the score, and moves through NotStarted, Running and Ended.
// A Session is not safe for concurrent use; the host drives it from one loop.
type Session struct {
	cfg     config.FlappyConfig
	pending *config.FlappyConfig
	seed    int64

	phase  Phase
	paused bool
	impact bool // Latched on pipe or ceiling contact
	ended  bool // Set when the body reaches the floor
	score  int
	best   int
	ticks  int

	body  *Body
	world *World
	pipes *ObstacleGenerator
	coins *CoinSpawner

	logger *log.Logger
	audio  AudioSink
	render RenderSink
	store  BestScoreStore
}

// NewSession creates a session in the NotStarted phase.
// It returns the validation error when cfg is not playable.
func NewSession(cfg config.FlappyConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	s.readBest()
	return s, nil
}

// SetConfig stages a new configuration. It takes effect at the next
// Start or Restart so a run never changes rules midway.
func (s *Session) SetConfig(cfg config.FlappyConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	s.pending = &cfg
	return nil
}

// SetSeed sets the RNG seed used from the next Start or Restart.
func (s *Session) SetSeed(seed int64) {
	s.seed = seed
}

// Start begins the first run. It is a no-op unless the session has not started.
func (s *Session) Start() {
	if s.phase != PhaseNotStarted {
		return
	}
	s.reset()
	s.readBest()
	s.setPhase(PhaseRunning)
}

// Restart begins a fresh run after the previous one ended.
// Score and entities are cleared; the best score is kept.
func (s *Session) Restart() {
	if s.phase != PhaseEnded {
		return
	}
	s.reset()
	s.readBest()
	s.setPhase(PhaseRunning)
}

// Jump applies the jump impulse. Ignored unless running, unpaused and intact.
func (s *Session) Jump() {
	if s.phase != PhaseRunning || s.paused || s.impact {
		return
	}
	s.body.Jump()
	s.cue(CueJump)
}

// TogglePause pauses or resumes a running session.
func (s *Session) TogglePause() {
	if s.phase != PhaseRunning {
		return
	}
	s.paused = !s.paused
	s.logger.Debug("pause toggled", "paused", s.paused)
}

// Tick advances the simulation by dt of elapsed time and notifies the render sink.
// dt is clamped to MaxFrameStep; ticks outside a running, unpaused session
// change nothing.
func (s *Session) Tick(dt time.Duration) {
	if s.phase == PhaseRunning && !s.paused && dt > 0 {
		dt = min(dt, MaxFrameStep)
		s.advance(float64(dt) / float64(FrameDuration))
	}
	if s.render != nil {
		s.render.Render(s.Snapshot())
	}
}

// Step advances exactly one reference frame.
func (s *Session) Step() {
	s.Tick(FrameDuration)
}

func (s *Session) advance(frames float64) {
	s.ticks++
	groundY := s.cfg.Playfield.GroundY()

	distance := s.world.Advance(frames)
	if pair := s.pipes.MaybeSpawn(distance); pair != nil {
		s.world.Obstacles = append(s.world.Obstacles, pair...)
	}
	if s.coins != nil {
		if coin, ok := s.coins.MaybeSpawn(distance, s.world.LiveCoin()); ok {
			s.world.Coins = append(s.world.Coins, coin)
		}
	}

	s.world.Scroll(distance)

	blockCoins(s.world.Coins, s.world.Obstacles)
	if !s.impact {
		if n := collectCoins(s.body.Box(), s.world.Coins); n > 0 {
			s.score += n * s.cfg.Coins.Bonus
			s.cue(CueCoin)
		}
		s.score += passObstacles(s.body.X, s.world.Obstacles)

		if hitsObstacle(s.body.Box(), s.world.Obstacles) {
			s.crash("pipe")
		}
	}

	s.body.Integrate(frames)

	if s.body.HitsCeiling() {
		s.body.clampToCeiling()
		if !s.impact {
			s.crash("ceiling")
		}
	}
	if s.body.HitsFloor(groundY) {
		s.body.landOn(groundY)
		s.finish()
	}
}

// crash latches the impact and freezes scrolling; the body keeps falling.
func (s *Session) crash(cause string) {
	s.impact = true
	s.world.Speed = 0
	s.cue(CueCrash)
	s.logger.Debug("impact", "cause", cause, "score", s.score, "tick", s.ticks)
}

// finish ends the run once the body is on the floor.
func (s *Session) finish() {
	if !s.impact {
		s.world.Speed = 0
		s.cue(CueCrash)
	}
	s.ended = true
	s.paused = false
	s.setPhase(PhaseEnded)

	s.readBest()
	if s.score > s.best {
		s.best = s.score
		if s.store != nil {
			if err := s.store.WriteBest(s.score); err != nil {
				s.logger.Warn("failed to save best score", "score", s.score, "err", err)
			}
		}
	}
}

// reset builds a fresh run from the current (or staged) configuration.
func (s *Session) reset() {
	if s.pending != nil {
		s.cfg = *s.pending
		s.pending = nil
	}

	rng := rand.New(rand.NewSource(s.seed))
	s.body = NewBody(s.cfg)
	s.world = NewWorld(s.cfg)
	s.pipes = NewObstacleGenerator(s.cfg, rng)
	s.coins = NewCoinSpawner(s.cfg)

	s.score = 0
	s.ticks = 0
	s.paused = false
	s.impact = false
	s.ended = false
}

func (s *Session) readBest() {
	if s.store == nil {
		return
	}
	best, err := s.store.ReadBest()
	if err != nil {
		s.logger.Warn("failed to read best score", "err", err)
		return
	}
	if best > s.best {
		s.best = best
	}
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.logger.Debug("phase", "from", s.phase, "to", p, "score", s.score, "best", s.best)
	s.phase = p
}

func (s *Session) cue(c Cue) {
	if s.audio != nil {
		s.audio.Play(c)
	}
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to the session.
func (s *Session) Best() int { return s.best }

// Impact reports whether the body has struck a pipe or the ceiling this run.
func (s *Session) Impact() bool { return s.impact }

// Ended reports whether the body has reached the floor this run.
func (s *Session) Ended() bool { return s.ended }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Config returns the configuration of the current run.
func (s *Session) Config() config.FlappyConfig { return s.cfg }

// State converts the session to the platform's game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Best:     s.best,
		Started:  s.phase != PhaseNotStarted,
		GameOver: s.phase == PhaseEnded,
		Paused:   s.paused,
	}
}
