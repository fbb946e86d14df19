// Package tracker implements Trackers, which track data generated
// during an experiment
package tracker

import (
	ts "github.com/samuelfneumann/lineworld/timestep"
)

// Interface Tracker keeps track of experiment data. Experiments send
// each TimeStep produced by the environment to their Trackers, in
// order, and Trackers determine which data from the TimeStep they
// cache.
type Tracker interface {
	Track(t ts.TimeStep)
}
