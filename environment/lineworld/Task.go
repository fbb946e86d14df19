package lineworld

import (
	env "github.com/samuelfneumann/lineworld/environment"
	ts "github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	// Episodes end once the return reaches either bound
	LossReturn float64 = -200
	WinReturn  float64 = 500

	MaxSteps int = 100
)

// HoleApple implements the task of reaching the apple while avoiding
// the hole.
//
// Rewards are HoleReward for falling into the hole, GoalReward for
// reaching the apple and StepReward otherwise.
//
// Episodes end after a step limit or when the episodic return leaves
// the band (LossReturn, WinReturn). Reaching a terminal cell does not
// end the episode.
type HoleApple struct {
	env.Starter
	returnEnder env.Ender
	stepEnder   env.Ender
}

// NewHoleApple creates and returns a new HoleApple task given a
// Starter, which determines the starting states; the maximum number of
// episode steps; and the band of returns within which episodes
// continue.
func NewHoleApple(s env.Starter, episodeSteps int,
	band r1.Interval) *HoleApple {
	stepEnder := env.NewStepLimit(episodeSteps)
	returnEnder := env.NewReturnLimit(band, ts.ReturnLimitReached)

	return &HoleApple{s, returnEnder, stepEnder}
}

// NewDefaultHoleApple returns the HoleApple task starting at
// StartingState with a MaxSteps step limit and a (LossReturn,
// WinReturn) return band
func NewDefaultHoleApple() *HoleApple {
	s, err := env.NewSingleStart(StartingState, BoardSize)
	if err != nil {
		panic(err)
	}

	band := r1.Interval{Min: LossReturn, Max: WinReturn}
	return NewHoleApple(s, MaxSteps, band)
}

// GetReward returns the reward for a given state and action, resulting
// in a given next state
func (h *HoleApple) GetReward(_, _, nextState int) float64 {
	return Reward(nextState)
}

// Terminal returns whether state is the hole or the apple
func (h *HoleApple) Terminal(state int) bool {
	return IsTerminal(state)
}

// End determines if a timestep is the last timestep in the episode.
// If so, it changes the TimeStep's StepType to timestep.Last. The return
// band is checked before the step limit, so an episode which leaves
// the band on its final step ends with timestep.ReturnLimitReached.
func (h *HoleApple) End(t *ts.TimeStep) bool {
	if end := h.returnEnder.End(t); end {
		return true
	}

	return h.stepEnder.End(t)
}

// Min returns the minimum attainable reward over all timesteps
func (h *HoleApple) Min() float64 {
	return floats.Min([]float64{HoleReward, GoalReward, StepReward})
}

// Max returns the maximum attainable reward over all timesteps
func (h *HoleApple) Max() float64 {
	return floats.Max([]float64{HoleReward, GoalReward, StepReward})
}
