// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/lineworld/environment"
	"github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a table of action values.
//
// On each call to SelectAction a uniform number in [0, 1) is drawn. If
// it is below ε, an action is chosen uniformly at random. Otherwise the
// greedy action is chosen, breaking ties in favour of the lowest
// action index.
type EGreedy struct {
	table        *mat.Dense
	GreedyPolicy *Greedy
	epsilon      float64

	explore distuv.Uniform     // Draws compared against epsilon
	random  distuv.Categorical // Uniform over actions
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected. The table has
// one row per observation and one column per action of env, and is
// initialized to zero.
func NewEGreedy(e float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	// Ensure actions and observations are 1-dimensional and discrete
	actionSpec, obsSpec := env.ActionSpec(), env.ObservationSpec()
	if actionSpec.Shape.Len() != 1 || obsSpec.Shape.Len() != 1 {
		return nil, fmt.Errorf("newEGreedy: actions and observations " +
			"must be 1-dimensional")
	}
	if actionSpec.Cardinality != environment.Discrete ||
		obsSpec.Cardinality != environment.Discrete {
		return nil, fmt.Errorf("newEGreedy: actions and observations " +
			"must be discrete")
	}

	// Create the table: rows = states, cols = actions
	table := mat.NewDense(obsSpec.Values(), actionSpec.Values(), nil)

	return NewEGreedyFromTable(e, rand.NewSource(seed), table), nil
}

// NewEGreedyFromTable returns an ε-greedy policy over an existing
// table of action values, drawing random numbers from source
func NewEGreedyFromTable(e float64, source rand.Source,
	table *mat.Dense) *EGreedy {
	_, actions := table.Dims()

	weights := make([]float64, actions)
	for i := range weights {
		weights[i] = 1.0 / float64(actions)
	}

	return &EGreedy{
		table:        table,
		GreedyPolicy: &Greedy{table}, // Share table between both Policies
		epsilon:      e,
		explore:      distuv.Uniform{Min: 0, Max: 1, Src: source},
		random:       distuv.NewCategorical(weights, source),
	}
}

// SelectAction selects and action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	if p.explore.Rand() < p.epsilon {
		return int(p.random.Rand())
	}
	return p.GreedyPolicy.SelectAction(t)
}

// Table returns the action values the policy acts on
func (p *EGreedy) Table() *mat.Dense {
	return p.table
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the probability of selecting a random action
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
}
