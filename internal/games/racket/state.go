package racket

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/racketball/internal/physics"
)

// DefaultLives is the number of balls a lives round starts with.
const DefaultLives = 3

// DefaultForce is the launch speed in units per frame.
const DefaultForce = 10

// Phase is a coarse view of the machine state.
type Phase int

const (
	PhaseIdle    Phase = iota // Never reset
	PhaseServe                // Ball resting, waiting for launch
	PhasePlaying              // Ball in play
	PhasePaused
	PhaseOver // No lives left
)

func (p Phase) String() string {
	switch p {
	case PhaseServe:
		return "serve"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}

// State is the round state. Lives reaching zero always stops the round.
type State struct {
	Running bool
	Started bool
	Lives   uint
	Paused  bool
	Over    bool
}

// Machine owns the round state and drives the ball on launch and loss.
// It is not safe for concurrent use.
type Machine struct {
	variant Variant
	lives   uint
	force   float64
	queue   *InputQueue
	logger  *log.Logger

	world *World
	state State
}

// NewMachine creates an idle machine. lives is what Reset restores; queue,
// when set, is subscribed for gyro input while a ball is in play.
func NewMachine(v Variant, lives uint, force float64, queue *InputQueue, logger *log.Logger) *Machine {
	if lives == 0 {
		lives = DefaultLives
	}
	if force <= 0 {
		force = DefaultForce
	}
	if logger == nil {
		logger = discardLogger
	}
	return &Machine{
		variant: v,
		lives:   lives,
		force:   force,
		queue:   queue,
		logger:  logger,
	}
}

// State returns a copy of the round state.
func (m *Machine) State() State {
	return m.state
}

// World returns the installed world, nil before the first Reset.
func (m *Machine) World() *World {
	return m.world
}

// Phase derives the current phase from the state flags.
func (m *Machine) Phase() Phase {
	switch {
	case m.state.Over:
		return PhaseOver
	case m.state.Paused:
		return PhasePaused
	case m.state.Running && m.state.Started:
		return PhasePlaying
	case m.state.Running:
		return PhaseServe
	default:
		return PhaseIdle
	}
}

// Reset installs a freshly built world and starts a new round.
func (m *Machine) Reset(w *World) {
	m.world = w
	m.state = State{Running: true, Started: false, Lives: m.lives}
	if m.queue != nil {
		m.queue.Unsubscribe()
	}
	m.logger.Debug("round reset", "variant", m.variant.ID, "lives", m.lives)
}

// Launch sends the ball toward target at the configured force. It does
// nothing unless the round is running and the ball is resting.
//
// Practice rounds mirror the vertical component so that aiming below the
// ball still sends it up.
func (m *Machine) Launch(target physics.Vec) bool {
	if !m.state.Running || m.state.Started || m.world == nil {
		return false
	}

	ball := m.world.Ball.Body.Position()
	theta := math.Atan2(target.Y-ball.Y, target.X-ball.X)

	v := physics.Vec{X: m.force * math.Cos(theta), Y: m.force * math.Sin(theta)}
	if m.variant.Mirrored {
		v.Y = -v.Y
	}
	m.world.Ball.Body.SetVelocity(v)

	m.state.Started = true
	if m.queue != nil {
		m.queue.Subscribe()
	}
	m.logger.Debug("ball launched", "angle", theta, "vx", v.X, "vy", v.Y)
	return true
}

// OnBallHitFloor takes a life and puts the ball back on its resting spot.
// It reports whether the game is over.
func (m *Machine) OnBallHitFloor() bool {
	if m.state.Lives == 0 || m.world == nil {
		return m.state.Over
	}

	m.state.Lives--
	m.world.ResetBall()
	m.state.Started = false
	if m.queue != nil {
		m.queue.Unsubscribe()
	}

	if m.state.Lives == 0 {
		m.state.Running = false
		m.state.Paused = false
		m.state.Over = true
		m.logger.Debug("game over", "variant", m.variant.ID)
		return true
	}

	m.logger.Debug("ball lost", "lives", m.state.Lives)
	return false
}

// ServeAgain returns the ball to its resting spot without costing a life.
func (m *Machine) ServeAgain() {
	if m.world == nil || !m.state.Running {
		return
	}
	m.world.ResetBall()
	m.state.Started = false
	if m.queue != nil {
		m.queue.Unsubscribe()
	}
	m.logger.Debug("ball served again")
}

// Pause stops the round. It only applies while running.
func (m *Machine) Pause() bool {
	if !m.state.Running {
		return false
	}
	m.state.Running = false
	m.state.Paused = true
	m.logger.Debug("paused")
	return true
}

// Resume continues a paused round.
func (m *Machine) Resume() bool {
	if !m.state.Paused {
		return false
	}
	m.state.Running = true
	m.state.Paused = false
	m.logger.Debug("resumed")
	return true
}
