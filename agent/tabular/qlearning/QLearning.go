// Package qlearning implements the tabular Q-Learning algorithm.
//
// The behaviour policy is ε-greedy and the target policy is greedy
// with respect to a single table of action values, shared between the
// learner and both policies.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/lineworld/agent"
	"github.com/samuelfneumann/lineworld/agent/tabular/policy"
	"github.com/samuelfneumann/lineworld/environment"
	"gonum.org/v1/gonum/mat"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	agent.Learner
	agent.Policy
	target *policy.Greedy
	seed   uint64
}

// New creates a new QLearning struct for environment env, with
// hyperparameters set by c and all action values initialized to zero
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	learner := NewQLearner(behaviour.Table(), c.LearningRate)

	return &QLearning{
		Learner: learner,
		Policy:  behaviour,
		target:  behaviour.GreedyPolicy,
		seed:    seed,
	}, nil
}

// Table returns the action values shared by the learner and policies
func (q *QLearning) Table() *mat.Dense {
	return q.Learner.Table()
}

// TargetPolicy returns the greedy policy with respect to the learned
// action values
func (q *QLearning) TargetPolicy() *policy.Greedy {
	return q.target
}

// Seed returns the seed used to construct the agent
func (q *QLearning) Seed() uint64 {
	return q.seed
}
