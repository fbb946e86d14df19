// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/lineworld/agent"
	"github.com/samuelfneumann/lineworld/agent/tabular/qlearning"
	"github.com/samuelfneumann/lineworld/environment/lineworld"
	"github.com/samuelfneumann/lineworld/experiment/tracker"
	ts "github.com/samuelfneumann/lineworld/timestep"
	"gonum.org/v1/gonum/mat"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to their Trackers,
// which determine what data is kept. The Run() method will run all
// episodes of the experiment, and the RunEpisode() function will run
// a single episode.
type Experiment interface {
	Run()
	RunEpisode() EpisodeResult

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// EpisodeResult summarizes a finished episode
type EpisodeResult struct {
	Return    float64
	Steps     int
	End       ts.EndType
	Terminals int // Number of terminal states reached
}

func (e EpisodeResult) String() string {
	return fmt.Sprintf("Return: %v  |  Steps: %d  |  End: %v  |  "+
		"Terminals: %d", e.Return, e.Steps, e.End, e.Terminals)
}

const (
	NumEpisodes      int = 5000
	ProgressInterval int = 100
)

// Config represents a configuration of an experiment on the line world
type Config struct {
	Episodes         int
	Discount         float64
	AgentConf        agent.Config
	ProgressInterval int // Episodes between progress reports
}

// DefaultConfig returns the Config used by Train
func DefaultConfig() Config {
	return Config{
		Episodes:         NumEpisodes,
		Discount:         lineworld.DefaultDiscount,
		AgentConf:        qlearning.DefaultConfig(),
		ProgressInterval: ProgressInterval,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("validate: episodes must be positive (got %d)",
			c.Episodes)
	}
	if c.ProgressInterval <= 0 {
		return fmt.Errorf("validate: progress interval must be positive "+
			"(got %d)", c.ProgressInterval)
	}
	if c.AgentConf == nil {
		return fmt.Errorf("validate: no agent configuration")
	}
	return c.AgentConf.Validate()
}

// CreateExp creates the line world experiment described by the Config
func (c Config) CreateExp(seed uint64, t ...tracker.Tracker) (*Online,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %v", err)
	}

	env, _, err := lineworld.New(lineworld.NewDefaultHoleApple(), c.Discount)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %v",
			err)
	}

	agent, err := c.AgentConf.CreateAgent(env, seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	return NewOnline(env, agent, c.Episodes, t...), nil
}

// Train runs the experiment described by the Config and returns the
// learned action values along with the greedy path from
// lineworld.TeleportState.
func (c Config) Train(seed uint64, t ...tracker.Tracker) (*mat.Dense,
	[]int, error) {
	exp, err := c.CreateExp(seed, t...)
	if err != nil {
		return nil, nil, err
	}
	exp.Run()

	table := exp.Agent.Table()
	path, err := Rollout(table, lineworld.TeleportState)
	return table, path, err
}

// Train trains a Q-Learning agent on the line world with the default
// Config. If verbose is true, the return of every ProgressInterval'th
// episode is written to w.
//
// The returned error is non-nil only if the greedy path does not reach
// a terminal state, in which case the partial path is returned.
func Train(verbose bool, seed uint64, w io.Writer) (*mat.Dense, []int,
	error) {
	c := DefaultConfig()

	var trackers []tracker.Tracker
	if verbose {
		trackers = append(trackers, tracker.NewProgress(w, c.ProgressInterval))
	}

	table, path, err := c.Train(seed, trackers...)
	if verbose {
		fmt.Fprintln(w)
	}
	return table, path, err
}
