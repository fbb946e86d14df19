// Package lineworld implements a one-dimensional hole and apple world.
//
// The world is a line of BoardSize cells. Cell 0 is a hole and cell
// BoardSize-1 holds an apple; both are terminal. The agent can only
// move left or right, one cell at a time, and is clamped to the board.
// Falling into the hole costs HoleReward, reaching the apple gives
// GoalReward, and landing on any other cell costs StepReward.
package lineworld

import (
	"fmt"

	env "github.com/samuelfneumann/lineworld/environment"
	ts "github.com/samuelfneumann/lineworld/timestep"
	"github.com/samuelfneumann/lineworld/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

const (
	BoardSize  int = 10
	NumActions int = 2

	Hole int = 0
	Goal int = BoardSize - 1

	// StartingState is where every episode starts
	StartingState int = 2

	// TeleportState is where the agent is placed after reaching a
	// terminal cell when the episode does not end
	TeleportState int = 3

	HoleReward float64 = -100
	GoalReward float64 = 100
	StepReward float64 = -1

	DefaultDiscount float64 = 0.99
)

// Action is a movement along the line
type Action int

const (
	MoveLeft Action = iota
	MoveRight
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Move returns the cell reached by taking action a from state. Moves
// off either end of the board leave the agent at the end cell. Illegal
// actions cause a panic.
func Move(state int, a Action) int {
	switch a {
	case MoveLeft:
		return intutils.Clip(state-1, 0, BoardSize-1)
	case MoveRight:
		return intutils.Clip(state+1, 0, BoardSize-1)
	}
	panic(fmt.Sprintf("move: illegal action %v ∉ (0, 1)", int(a)))
}

// Reward returns the reward for landing on cell next
func Reward(next int) float64 {
	switch next {
	case Hole:
		return HoleReward
	case Goal:
		return GoalReward
	}
	return StepReward
}

// IsTerminal returns whether state is the hole or the goal
func IsTerminal(state int) bool {
	return state == Hole || state == Goal
}

// Transition computes the outcome of taking action a in state. It has
// no side effects.
func Transition(state int, a Action) (next int, reward float64,
	terminal bool) {
	next = Move(state, a)
	return next, Reward(next), IsTerminal(next)
}

// LineWorld implements the line world environment. The Task determines
// rewards and when episodes end. LineWorld satisfies the
// environment.Teleporter interface.
//
// Reaching the hole or the goal does not end the episode. Instead,
// the observation of the resulting timestep is the terminal cell and
// the caller decides whether to Teleport the agent back onto the
// board.
type LineWorld struct {
	env.Task
	discount    float64
	currentStep ts.TimeStep
}

// New creates a new LineWorld with task t and discount factor
// discount, returning the environment and its first timestep
func New(t env.Task, discount float64) (*LineWorld, ts.TimeStep, error) {
	if discount < 0 || discount > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: discount must be in "+
			"[0, 1] (got %v)", discount)
	}
	if start := t.Start(); start < 0 || start >= BoardSize {
		return nil, ts.TimeStep{}, fmt.Errorf("new: start state %d off "+
			"the board", start)
	}

	l := &LineWorld{Task: t, discount: discount}
	return l, l.Reset(), nil
}

// Reset resets the environment to a starting state
func (l *LineWorld) Reset() ts.TimeStep {
	step := ts.New(ts.First, 0, l.discount, l.Start(), 0, 0)
	l.currentStep = step
	return step
}

// Step takes one environmental step given action a and returns the next
// timestep as a timestep.TimeStep and a bool indicating whether or not
// the episode has ended. Legal actions are in the set {0, 1}. Actions
// outside this range will cause the environment to panic.
func (l *LineWorld) Step(a int) (ts.TimeStep, bool) {
	state := l.currentStep.Observation
	next := Move(state, Action(a))

	reward := l.GetReward(state, a, next)
	nextStep := ts.New(ts.Mid, reward, l.discount, next,
		l.currentStep.Number+1, l.currentStep.Return+reward)

	last := l.End(&nextStep)
	l.currentStep = nextStep

	return nextStep, last
}

// Teleport moves the agent to TeleportState without ending the
// episode. The step number and return of the current timestep are
// kept.
func (l *LineWorld) Teleport() ts.TimeStep {
	if l.currentStep.Last() {
		panic("teleport: cannot teleport on the last step of an episode")
	}
	l.currentStep.Observation = TeleportState
	return l.currentStep
}

// CurrentTimeStep returns the last timestep generated by the
// environment
func (l *LineWorld) CurrentTimeStep() ts.TimeStep {
	return l.currentStep
}

// ActionSpec returns the action specification of the environment
func (l *LineWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(MoveLeft)})
	upperBound := mat.NewVecDense(1, []float64{float64(MoveRight)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (l *LineWorld) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(BoardSize - 1)})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (l *LineWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{l.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Discrete)
}

func (l *LineWorld) String() string {
	str := "LineWorld | At: %v  |  Hole: %v  |  Goal: %v  |  Size: %v"
	return fmt.Sprintf(str, l.currentStep.Observation, Hole, Goal, BoardSize)
}
