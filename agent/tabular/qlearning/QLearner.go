package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/lineworld/timestep"
	"github.com/samuelfneumann/lineworld/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// QLearner implements the update functionality for the tabular
// Q-Learning algorithm.
type QLearner struct {
	table        *mat.Dense
	transition   timestep.Transition
	observed     bool
	learningRate float64
}

// NewQLearner creates a new QLearner struct
//
// table is the action value table of the policy to learn
func NewQLearner(table *mat.Dense, learningRate float64) *QLearner {
	return &QLearner{table: table, learningRate: learningRate}
}

// Observe records a transition to be learned from on the next call to
// Step
func (q *QLearner) Observe(t timestep.Transition) {
	states, actions := q.table.Dims()
	if t.Action < 0 || t.Action >= actions {
		fmt.Fprintf(os.Stderr, "Warning: action %d out of range [0, %d), "+
			"transition ignored\n", t.Action, actions)
		q.observed = false
		return
	}
	if t.State < 0 || t.State >= states || t.NextState < 0 ||
		t.NextState >= states {
		fmt.Fprintf(os.Stderr, "Warning: transition %v has a state out of "+
			"range [0, %d), transition ignored\n", t, states)
		q.observed = false
		return
	}

	q.transition = t
	q.observed = true
}

// Step updates the action value of the last observed transition
//
//	Q(s, a) ← Q(s, a) + α[r + γ max_a' Q(s', a') - Q(s, a)]
//
// The bootstrap uses the state landed in, even if it is terminal.
func (q *QLearner) Step() {
	if !q.observed {
		return
	}

	t := q.transition
	current := q.table.At(t.State, t.Action)
	q.table.Set(t.State, t.Action, current+q.learningRate*q.TdError(t))
}

// TdError returns the TD error of transition t under the current
// action values
func (q *QLearner) TdError(t timestep.Transition) float64 {
	target := t.Reward + t.Discount*matutils.RowMax(q.table, t.NextState)
	return target - q.table.At(t.State, t.Action)
}

// Table returns the action value table of the learner
func (q *QLearner) Table() *mat.Dense {
	return q.table
}
