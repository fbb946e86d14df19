package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/lineworld/agent"
	"github.com/samuelfneumann/lineworld/environment"
)

const (
	DefaultEpsilon      float64 = 0.1
	DefaultLearningRate float64 = 0.1
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon      float64 // epislon for behaviour policy
	LearningRate float64
}

// DefaultConfig returns the Config used to train on the line world
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon, LearningRate: DefaultLearningRate}
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epislon must be in [0, 1] (got %v)", c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1] (got %v)",
			c.LearningRate)
	}
	return nil
}
