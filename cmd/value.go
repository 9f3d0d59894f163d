package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker"
	"github.com/invtracker/tracker/timepoint"
)

type valueCmd struct {
	id   int64
	date string
}

func (*valueCmd) Name() string { return "value" }
func (*valueCmd) Synopsis() string {
	return "compute the value of a portfolio at a point in time"
}
func (*valueCmd) Usage() string {
	return `invt value -id <portfolio_id> -d <point>

  Loads the portfolio from the record store and computes its value in the
  base currency at the given point in time. Investments whose vehicle has
  no data at that point contribute nothing.

Usage Examples:
# Value portfolio 9 at the end of June 2024.
$ invt value -id 9 -d 2024-06

`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the portfolio to value.")
	f.StringVar(&c.date, "d", "", "Point in time to value at, like '2024-06' or '2024-06-08 15:04'.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 || c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: both -id and -d are required.")
		return subcommands.ExitUsageError
	}
	on, err := timepoint.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing point in time: %v\n", err)
		return subcommands.ExitUsageError
	}

	db := OpenDatabase()
	p, err := db.LoadPortfolio(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	value, err := p.PriceAt(on)
	if errors.Is(err, tracker.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "No exchange rate data on %s.\n", on)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio %d on %s\n\n", c.id, on)
	fmt.Fprintf(&b, "Worth **%s** across %d investments.\n", tracker.M(value, *baseCurrency), p.Len())
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
