package commands

import (
	"fmt"
	"time"

	"github.com/samuelfneumann/lineworld/environment/lineworld"
	"github.com/samuelfneumann/lineworld/experiment"
	"github.com/samuelfneumann/lineworld/experiment/tracker"
	"github.com/samuelfneumann/lineworld/render"
	"github.com/spf13/cobra"
)

const progressBarWidth int = 50

// TrainCommand returns the train subcommand, which trains an agent and
// prints the learned action values and greedy path
func TrainCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Train an agent and print its action values and greedy path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd, opts)
		},
	}
}

func runTrain(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	c := experiment.DefaultConfig()
	c.Episodes = opts.episodes

	verbose := !opts.quiet && !opts.progress
	var trackers []tracker.Tracker
	if verbose {
		trackers = append(trackers, tracker.NewProgress(out, c.ProgressInterval))
	}
	if opts.progress {
		bar := tracker.NewProgressBar(cmd.ErrOrStderr(), progressBarWidth,
			c.Episodes)
		defer bar.Close()
		trackers = append(trackers, bar)
	}

	table, path, trainErr := c.Train(seed, trackers...)
	if table == nil {
		return trainErr
	}
	if verbose {
		fmt.Fprintln(out)
	}

	// The greedy path starts where the agent is teleported to, but the
	// agent first appears at the starting state
	path = append([]int{lineworld.StartingState}, path...)

	fmt.Fprintln(out, "Final Q-Table:")
	if err := render.Table(out, table); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Optimal Path:")
	if err := render.Path(out, path, !opts.noColor); err != nil {
		return err
	}

	if experiment.IsPolicyDivergence(trainErr) {
		return fmt.Errorf("train: greedy path did not terminate after %d "+
			"steps: %v", experiment.MaxRolloutSteps, trainErr)
	}
	return trainErr
}
