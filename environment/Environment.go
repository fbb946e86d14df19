// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	"github.com/samuelfneumann/lineworld/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() int
}

// Ender determines when episodes end. End should modify the argument
// TimeStep so that its StepType is timestep.Last and its EndType
// records the reason the episode ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	Starter
	Ender
	GetReward(state, action, nextState int) float64

	// Terminal returns whether a state is a terminal state of the
	// Task. Reaching a terminal state does not have to end the episode.
	Terminal(state int) bool
	Min() float64 // Minimum attainable reward
	Max() float64 // Maximum attainable reward
}

// Environment implements a simualted environment, which includes a Task to
// complete
type Environment interface {
	Task
	Reset() timestep.TimeStep // Resets between episodes
	Step(action int) (timestep.TimeStep, bool)
	CurrentTimeStep() timestep.TimeStep
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Teleporter is an Environment which can relocate the agent mid-episode
// without ending the episode
type Teleporter interface {
	Environment
	Teleport() timestep.TimeStep
}
