// Package commands implements the lineworld command line interface
package commands

import (
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands
type options struct {
	seed     uint64
	episodes int
	quiet    bool
	noColor  bool
	progress bool
}

// GetRootCommand returns the lineworld command. Run without a
// subcommand it behaves like train.
func GetRootCommand() *cobra.Command {
	opts := &options{}

	rootCommand := &cobra.Command{
		Use:   "lineworld",
		Short: "Q-Learning on a one dimensional hole and apple world",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd, opts)
		},
		SilenceUsage: true,
	}
	rootCommand.PersistentFlags().Uint64Var(&opts.seed, "seed", 0,
		"Seed of the random number generator (default: current time)")
	rootCommand.PersistentFlags().IntVarP(&opts.episodes, "episodes", "e",
		5000, "Number of episodes to train for")
	rootCommand.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false,
		"Do not report progress during training")
	rootCommand.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"Draw the path without colours")
	rootCommand.PersistentFlags().BoolVar(&opts.progress, "progress", false,
		"Show a progress bar on stderr instead of progress lines")

	rootCommand.AddCommand(TrainCommand(opts))
	return rootCommand
}
