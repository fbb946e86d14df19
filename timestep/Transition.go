package timestep

import "fmt"

// Transition is a single (s, a, r, s', γ) tuple.
//
// NextState is always the position the action actually led to, which
// may be a terminal position even if the agent is relocated afterwards.
type Transition struct {
	State     int
	Action    int
	Reward    float64
	Discount  float64
	NextState int
}

// NewTransition builds the transition from step to next when action was
// taken in step
func NewTransition(step TimeStep, action int, next TimeStep) Transition {
	return Transition{
		State:     step.Observation,
		Action:    action,
		Reward:    next.Reward,
		Discount:  next.Discount,
		NextState: next.Observation,
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("Transition | %d --%d--> %d  |  Reward: %.2f  |  "+
		"Discount: %.2f", t.State, t.Action, t.NextState, t.Reward, t.Discount)
}
