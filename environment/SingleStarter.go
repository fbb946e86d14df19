package environment

import (
	"fmt"
)

// SingleStart is a Starter which always starts episodes in the same
// state
type SingleStart struct {
	state int
}

// NewSingleStart returns a SingleStart which starts every episode at
// state, given that there are states states in total
func NewSingleStart(state, states int) (Starter, error) {
	if state < 0 || state >= states {
		return &SingleStart{}, fmt.Errorf("newSingleStart: state = %d "+
			"not in [0, %d)", state, states)
	}

	return &SingleStart{state}, nil
}

func (s *SingleStart) Start() int {
	return s.state
}
