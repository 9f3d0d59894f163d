package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker/timepoint"
)

type pricesCmd struct {
	id          int64
	granularity string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "list the recorded prices of a vehicle" }
func (*pricesCmd) Usage() string {
	return `invt prices -id <vehicle_id> [-g <granularity>] <earliest> <latest>

  Fetches the price observations of a vehicle between two points in time.
  The granularity asks the store to thin the result to one observation per
  year, month, date, hour or minute.

Usage Examples:
# Daily prices of vehicle 3 over June 2024.
$ invt prices -id 3 -g date 2024-06-01 2024-06-30

`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the vehicle.")
	f.StringVar(&c.granularity, "g", "date", "Resolution of the listing (year, month, date, hour, minute).")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: -id and two points in time are required.")
		return subcommands.ExitUsageError
	}
	granularity, err := timepoint.ParseGranularity(strings.ToUpper(c.granularity))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing granularity: %v\n", err)
		return subcommands.ExitUsageError
	}
	earliest, err := timepoint.Parse(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	latest, err := timepoint.Parse(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	db := OpenDatabase()
	prices, err := db.FindPastPrices(c.id, granularity, earliest, latest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(prices) == 0 {
		fmt.Printf("No prices between %s and %s.\n", earliest, latest)
		return subcommands.ExitSuccess
	}
	for _, pp := range prices {
		fmt.Printf("%-16s  %v\n", pp.When, pp.Price)
	}
	return subcommands.ExitSuccess
}
