package tracker

import (
	"github.com/samuelfneumann/lineworld/timestep"
)

// EpisodeLength tracks the lengths of episodes in an experiment.
// Note that an episode must finish for this Tracker to record its
// length.
type EpisodeLength struct {
	episodeLengths []int
}

// NewEpisodeLength returns a new EpisodeLength tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Data returns the length of each finished episode, in order
func (e *EpisodeLength) Data() []int {
	return e.episodeLengths
}
