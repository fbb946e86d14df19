package policy

import (
	"github.com/samuelfneumann/lineworld/timestep"
	"github.com/samuelfneumann/lineworld/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// Greedy implements a greedy policy over a table of action values
type Greedy struct {
	table *mat.Dense
}

// NewGreedy creates a new Greedy policy acting on table
func NewGreedy(table *mat.Dense) *Greedy {
	return &Greedy{table}
}

// Table returns the action values the policy acts on
func (p *Greedy) Table() *mat.Dense {
	return p.table
}

// SelectAction selects the action with the highest value in the
// timestep's state. Ties go to the lowest action index.
func (p *Greedy) SelectAction(t timestep.TimeStep) int {
	return p.Action(t.Observation)
}

// Action returns the greedy action in state
func (p *Greedy) Action(state int) int {
	return matutils.MaxVec(p.table.RowView(state))
}
