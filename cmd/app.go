// Package cmd implements the CLI application to track investments.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/invtracker/tracker"
	"github.com/invtracker/tracker/restdb"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&searchCmd{}, "vehicles")
	c.Register(&addVehicleCmd{}, "vehicles")
	c.Register(&pricesCmd{}, "vehicles")

	c.Register(&valueCmd{}, "portfolios")
	c.Register(&rateCmd{}, "portfolios")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverURL = flag.String("server", defaultServer(), "Base URL of the record store. Defaults to $INVT_SERVER.")
var baseCurrency = flag.String("currency", "USD", "ISO 4217 code used to present portfolio values.")

func defaultServer() string {
	if s := os.Getenv("INVT_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// OpenDatabase is the central function to open the database against the
// configured server.
func OpenDatabase() *tracker.Database {
	return tracker.NewDatabase(restdb.New(*serverURL))
}
