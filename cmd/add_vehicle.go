package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker"
)

type addVehicleCmd struct{}

func (*addVehicleCmd) Name() string     { return "add-vehicle" }
func (*addVehicleCmd) Synopsis() string { return "create a new investment vehicle in the record store" }
func (*addVehicleCmd) Usage() string {
	return `invt add-vehicle <symbol> <name...>

  Creates a vehicle with the given symbol and name. The store assigns the
  id and prints it back, ready to use in other commands.

Usage Examples:
$ invt add-vehicle VOO Vanguard S&P 500 ETF

`
}

func (c *addVehicleCmd) SetFlags(f *flag.FlagSet) {}

func (c *addVehicleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: a symbol and a name are required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	name := strings.Join(f.Args()[1:], " ")

	v := tracker.NewVehicle(symbol, name)
	db := OpenDatabase()
	if err := db.Save(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating vehicle %q: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	id, _ := v.ID()
	fmt.Printf("Created vehicle %q with id %d.\n", symbol, id)
	return subcommands.ExitSuccess
}
