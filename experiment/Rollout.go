package experiment

import (
	"github.com/samuelfneumann/lineworld/agent/tabular/policy"
	"github.com/samuelfneumann/lineworld/environment/lineworld"
	"gonum.org/v1/gonum/mat"
)

// MaxRolloutSteps bounds the number of moves of a greedy rollout
const MaxRolloutSteps int = lineworld.BoardSize * 4

// Rollout follows the greedy policy of table from start until a
// terminal cell is reached, returning every cell visited including
// start.
//
// If the policy does not reach a terminal cell within MaxRolloutSteps
// moves, the path walked so far is returned together with an error for
// which IsPolicyDivergence is true.
func Rollout(table *mat.Dense, start int) ([]int, error) {
	if rows, cols := table.Dims(); rows != lineworld.BoardSize ||
		cols != lineworld.NumActions {
		return nil, &RolloutError{Op: "rollout", Err: errTableShape}
	}
	greedy := policy.NewGreedy(table)

	state := start
	path := []int{state}
	for moves := 0; !lineworld.IsTerminal(state); moves++ {
		if moves >= MaxRolloutSteps {
			return path, &RolloutError{Op: "rollout", Err: errPolicyDivergence}
		}

		state = lineworld.Move(state, lineworld.Action(greedy.Action(state)))
		path = append(path, state)
	}

	return path, nil
}
