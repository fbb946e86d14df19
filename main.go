package main

import (
	"os"

	"github.com/samuelfneumann/lineworld/commands"
)

func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
