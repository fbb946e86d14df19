package experiment

import (
	"github.com/samuelfneumann/lineworld/agent"
	env "github.com/samuelfneumann/lineworld/environment"
	"github.com/samuelfneumann/lineworld/experiment/tracker"
	ts "github.com/samuelfneumann/lineworld/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// Reaching a terminal state does not end an episode. Instead, the
// agent learns from the transition into the terminal state and is then
// teleported by the environment, continuing the same episode. Episodes
// end only when the environment's Task says so.
type Online struct {
	env.Teleporter
	agent.Agent
	episodes        int
	currentEpisodes int
	trackers        []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines
// how many episodes the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is tracked.
func NewOnline(e env.Teleporter, a agent.Agent, episodes int,
	t ...tracker.Tracker) *Online {
	return &Online{
		Teleporter: e,
		Agent:      a,
		episodes:   episodes,
		trackers:   t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and reports how
// it went
func (o *Online) RunEpisode() EpisodeResult {
	step := o.Teleporter.Reset()
	o.track(step)

	var result EpisodeResult
	for {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		next, last := o.Teleporter.Step(action)

		// Learn from the state actually landed in, before any teleport
		o.Agent.Observe(ts.NewTransition(step, action, next))
		o.Agent.Step()
		o.track(next)

		terminal := o.Teleporter.Terminal(next.Observation)
		if terminal {
			result.Terminals++
		}

		if last {
			result.Return = next.Return
			result.Steps = next.Number
			result.End = next.EndType()
			break
		}

		if terminal {
			next = o.Teleporter.Teleport()
		}
		step = next
	}

	o.currentEpisodes++
	return result
}

// Run runs the experiment for all remaining episodes
func (o *Online) Run() {
	for o.currentEpisodes < o.episodes {
		o.RunEpisode()
	}
}

// Episodes returns the number of episodes run so far
func (o *Online) Episodes() int {
	return o.currentEpisodes
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
