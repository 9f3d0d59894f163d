package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Handles shell completion requests and exits, a no-op otherwise.
	completion().Complete("invt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"server":   predict.Something,
			"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"search":      {Args: predict.Something},
			"add-vehicle": {Args: predict.Something},
			"prices": {
				Flags: map[string]complete.Predictor{
					"id": predict.Something,
					"g":  predict.Set{"year", "month", "date", "hour", "minute"},
				},
				Args: predict.Something,
			},
			"value": {
				Flags: map[string]complete.Predictor{
					"id": predict.Something,
					"d":  predict.Something,
				},
			},
			"rate": {
				Flags: map[string]complete.Predictor{"id": predict.Something},
				Args:  predict.Something,
			},
			"topic": {Args: predict.Set{"readme", "valuation", "timepoints", "*"}},
			"assist": {
				Flags: map[string]complete.Predictor{
					"id": predict.Something,
					"d":  predict.Something,
				},
				Args: predict.Something,
			},
		},
	}
}
