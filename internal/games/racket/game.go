package racket

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/racketball/internal/arena"
	"github.com/vovakirdan/racketball/internal/config"
	"github.com/vovakirdan/racketball/internal/core"
	"github.com/vovakirdan/racketball/internal/physics"
	"github.com/vovakirdan/racketball/internal/registry"
)

// Variant selects the rules of a round.
type Variant struct {
	ID       string
	Title    string
	Floor    bool // Floor present; touching it costs a life
	Mirrored bool // Launch mirrors the vertical aim
}

var (
	// VariantLives is the standard game: three balls, floor ends rounds.
	VariantLives = Variant{ID: "racket", Title: "Racketball", Floor: true}

	// VariantPractice has no floor. A ball leaving the arena is served again.
	VariantPractice = Variant{ID: "racket_practice", Title: "Racketball Practice", Mirrored: true}
)

var discardLogger = log.New(io.Discard)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives transition logs from every game instance
var logger = discardLogger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes game logs to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger
	}
	logger = l
}

// Game implements registry.Game for one variant.
type Game struct {
	variant Variant

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.RacketConfig
	fixed   bool // cfg was supplied by the caller and is not reloaded
	geo     arena.Geometry
	preset  config.DifficultyPreset
	logger  *log.Logger

	queue   *InputQueue
	machine *Machine
	snap    Snapshot
	ticks   uint64

	// Last layout used by Render, for mapping clicks back to the arena
	view core.Viewport
}

// New creates a standard game with three lives.
func New() *Game {
	return newGame(VariantLives, config.DefaultRacketConfig(), false)
}

// NewPractice creates a game without a floor.
func NewPractice() *Game {
	return newGame(VariantPractice, config.DefaultRacketConfig(), false)
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(v Variant, cfg config.RacketConfig) *Game {
	return newGame(v, cfg, true)
}

func newGame(v Variant, cfg config.RacketConfig, fixed bool) *Game {
	return &Game{
		variant: v,
		cfg:     cfg,
		fixed:   fixed,
		preset:  difficultyPreset,
		queue:   NewInputQueue(cfg.Input.QueueSize),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the rules this game plays by.
func (g *Game) Variant() Variant {
	return g.variant
}

// SetDifficulty overrides the preset for this game only. It takes effect
// on the next Reset and is ignored by games built with NewWithConfig.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// Reset loads configuration and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.logger = logger.With("game", g.variant.ID)

	cfg := g.cfg
	if !g.fixed {
		loaded, err := config.LoadRacket(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "err", err)
			loaded = config.DefaultRacketConfig()
		}
		if g.preset != "" {
			config.ApplyRacketPreset(&loaded, g.preset)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		g.logger.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultRacketConfig()
	}

	g.cfg = cfg
	g.geo = cfg.Geometry()
	g.queue.Configure(cfg.Input.QueueSize, cfg.Input.GyroGain)
	g.machine = NewMachine(g.variant, uint(cfg.Gameplay.Lives), cfg.Launch.Force, g.queue, g.logger) //#nosec G115 -- validated positive
	g.Restart()
}

// Restart drops pending input, releases the current world and builds a
// fresh one.
func (g *Game) Restart() {
	if g.machine == nil {
		g.Reset(g.runtime)
		return
	}

	g.queue.Clear()
	if old := g.machine.World(); old != nil {
		old.Close()
	}

	w := BuildWorld(g.geo, g.variant)
	g.machine.Reset(w)
	g.snap = w.Snapshot()
	g.ticks = 0
}

// Start launches the resting ball toward target.
func (g *Game) Start(target physics.Vec) bool {
	if g.machine == nil {
		return false
	}
	return g.machine.Launch(target)
}

// Feed queues a motion sample. Safe for concurrent use with Step.
func (g *Game) Feed(s core.Sample) {
	g.queue.Push(s)
}

// Update advances the round by elapsed wall time and returns what to draw.
// A round that is not running returns the last snapshot unchanged.
func (g *Game) Update(elapsed time.Duration) Snapshot {
	if g.machine == nil || !g.machine.State().Running {
		return g.snap
	}
	w := g.machine.World()

	samples := g.queue.Drain()
	for _, s := range samples {
		if t, ok := s.(core.TouchEvent); ok && t.Type == core.TouchTap {
			g.Start(physics.Vec{X: t.LocationX, Y: t.LocationY})
		}
	}

	g.snap = Tick(w, samples, elapsed)
	g.ticks++

	changed := false
	for _, ev := range w.Events.Drain() {
		if ClassifyEvent(ev) != BallHitFloor {
			continue
		}
		changed = true
		if g.machine.OnBallHitFloor() {
			break
		}
	}

	if !g.variant.Floor && w.BallEscaped() {
		g.machine.ServeAgain()
		changed = true
	}

	if changed {
		g.snap = w.Snapshot()
	}
	return g.snap
}

// Step is the fixed-tick entry used by the platform.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	if g.machine == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		if !g.machine.Resume() {
			g.machine.Pause()
		}
	}
	if !g.machine.State().Running {
		// Moves made while paused or over must not land on resume
		g.queue.Clear()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.Feed(core.TouchEvent{Type: core.TouchMove, DeltaX: -g.cfg.Input.KeyStep})
	}
	if in.Has(core.ActionRight) {
		g.Feed(core.TouchEvent{Type: core.TouchMove, DeltaX: g.cfg.Input.KeyStep})
	}
	if in.Has(core.ActionLaunch) {
		g.Start(g.keyboardTarget())
	}

	g.Update(time.Second / time.Duration(g.runtime.TickRate))
	return core.StepResult{State: g.State()}
}

// keyboardTarget aims the keyboard serve up and toward the arena center.
func (g *Game) keyboardTarget() physics.Vec {
	w := g.machine.World()
	if w == nil {
		return physics.Vec{}
	}

	ball := w.Ball.Body.Position()
	dx := g.cfg.Launch.KeyTargetDX
	if ball.X > g.geo.StartX() {
		dx = -dx
	}

	target := physics.Vec{X: ball.X + dx, Y: g.cfg.Launch.KeyTargetY}
	if g.variant.Mirrored {
		target.Y = 2*ball.Y - target.Y
	}
	return target
}

// Snapshot returns the entities as of the last update.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Machine exposes the round state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Geometry returns the arena in use.
func (g *Game) Geometry() arena.Geometry {
	return g.geo
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	st := g.machine.State()
	return core.GameState{
		Lives:    int(st.Lives), //#nosec G115 -- small count
		Running:  st.Running,
		Started:  st.Started,
		GameOver: st.Over,
		Paused:   st.Paused,
	}
}

// Close releases the current world and pending input.
func (g *Game) Close() {
	g.queue.Clear()
	if g.machine == nil {
		return
	}
	if w := g.machine.World(); w != nil {
		w.Close()
	}
}

// Register the variants with the registry
func init() {
	registry.Register(VariantLives.ID, func() registry.Game {
		return New()
	})
	registry.Register(VariantPractice.ID, func() registry.Game {
		return NewPractice()
	})
}
