// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. Only Last timesteps carry
// an EndType other than None.
type EndType int

const (
	None EndType = iota
	Timeout
	ReturnLimitReached
)

func (e EndType) String() string {
	switch e {
	case Timeout:
		return "Timeout"
	case ReturnLimitReached:
		return "ReturnLimitReached"
	default:
		return "None"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Observation is the position the agent occupies after the step. Return
// is the cumulative reward of the episode up to and including this
// step.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation int
	Number      int
	Return      float64
	endType     EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o, n int, ret float64) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		Return:      ret,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the reason the episode ended on this timestep
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns the reason the episode ended on this timestep
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Position: %v  |  Step Number:  %v  |  Return: %.2f"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Observation,
		t.Number, t.Return)
}
