package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker"
	"github.com/invtracker/tracker/timepoint"
)

type rateCmd struct {
	id int64
}

func (*rateCmd) Name() string { return "rate" }
func (*rateCmd) Synopsis() string {
	return "compute a vehicle's rate of return between two points in time"
}
func (*rateCmd) Usage() string {
	return `invt rate -id <vehicle_id> <earlier> <later>

  Loads the vehicle and computes its rate of return between the two points
  in time. Both points must have a recorded price.

Usage Examples:
$ invt rate -id 3 2000-01 2024-06

`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the vehicle.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: -id and two points in time are required.")
		return subcommands.ExitUsageError
	}
	earlier, err := timepoint.Parse(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	later, err := timepoint.Parse(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	db := OpenDatabase()
	v, err := db.LoadVehicle(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vehicle %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	rate, err := tracker.RateOfReturn(v, earlier, later)
	switch {
	case errors.Is(err, tracker.ErrZeroBasis):
		fmt.Fprintf(os.Stderr, "The price of %s on %s is zero, no rate of return exists.\n", v.Symbol(), earlier)
		return subcommands.ExitFailure
	case errors.Is(err, tracker.ErrNotFound):
		fmt.Fprintf(os.Stderr, "%s has no recorded price at one of the points.\n", v.Symbol())
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error computing rate of return: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %+.2f%% from %s to %s\n", v.Symbol(), 100*rate, earlier, later)
	return subcommands.ExitSuccess
}
