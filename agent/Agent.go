// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/lineworld/environment"
	"github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
//
// A Learner determines how the table changes, and therefore how a
// Policy changes over time. The Learner and Policy of an Agent should
// have pointers to the same table so that the Learner can use the
// transitions chosen by the Policy to update the table appropriately.
type Learner interface {
	// Observe records a transition to learn from on the next call to
	// Step
	Observe(t timestep.Transition)

	// Step performs a single update to the learner
	Step()

	// TdError returns the TD error on a transition
	TdError(t timestep.Transition) float64

	// Table returns the action value table, with one row per state and
	// one column per action
	Table() *mat.Dense
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Agents usually have a
// target and behaviour policy.
type Policy interface {
	SelectAction(t timestep.TimeStep) int
	Table() *mat.Dense
}

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent returns whether the argument agent is valid for the
	// Config
	ValidAgent(Agent) bool

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error
}
