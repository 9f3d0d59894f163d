package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker"
	"github.com/invtracker/tracker/timepoint"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the record store for investment vehicles" }
func (*searchCmd) Usage() string {
	return `invt search <search term>

  Searches vehicles by symbol or name and prints ready-to-use commands
  for the results.

Usage Examples:
$ invt search vanguard

`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	db := OpenDatabase()
	results, err := db.FindVehicles(searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching vehicles: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), searchTerm)

	for _, v := range results {
		id, ok := v.ID()
		if !ok {
			continue // skip rows the store returned without an id
		}
		fmt.Printf("➡️   %s : %s\n", v.Symbol(), v.Name())
		fmt.Printf("    Observations : %d\n", v.Count())
		if v.Count() > 0 {
			on, price := latestObservation(v)
			fmt.Printf("    Latest price : %v on %s\n", price, on)
		}
		fmt.Printf("    $ invt prices -id %d 2000-01 2100-01\n\n", id)
	}

	return subcommands.ExitSuccess
}

// latestObservation returns the chronologically last price of the vehicle.
func latestObservation(v *tracker.Vehicle) (on timepoint.Point, price float64) {
	for pp := range v.PastPrices() {
		on, price = pp.When, pp.Price
	}
	return on, price
}
