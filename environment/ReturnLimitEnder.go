package environment

import (
	"fmt"

	"github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/spatial/r1"
)

// ReturnLimit implements the Ender interface to end episodes
// whenever the cumulative episodic return leaves an open interval.
// A return equal to either bound of the interval ends the episode.
type ReturnLimit struct {
	band    r1.Interval
	endType timestep.EndType
}

// NewReturnLimit creates and returns a new return limit. The endType
// argument determines what the episode end should be considered as.
func NewReturnLimit(band r1.Interval, endType timestep.EndType) Ender {
	if band.Min >= band.Max {
		panic(fmt.Sprintf("newReturnLimit: empty return band (%v, %v)",
			band.Min, band.Max))
	}

	return &ReturnLimit{band, endType}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode temrination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (r *ReturnLimit) End(t *timestep.TimeStep) bool {
	if t.Return <= r.band.Min || t.Return >= r.band.Max {
		t.StepType = timestep.Last
		t.SetEnd(r.endType)
		return true
	}
	return false
}

// Band returns the open interval of returns for which episodes continue
func (r *ReturnLimit) Band() r1.Interval {
	return r.band
}
