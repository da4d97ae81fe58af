package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
)

var cmd = &commander.Command{
	UsageLine: "alkit <command> [options]",
	Short:     "score and select pool instances with composable active-learning utility measures",
}

func init() {
	cmd.Subcommands = []*commander.Command{
		ScoreCmd(),
		QueryCmd(),
		ValidateCmd(),
	}
}

func main() {
	err := cmd.Dispatch(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
