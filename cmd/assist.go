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
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

type assistCmd struct {
	id   int64
	date string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about a portfolio" }
func (*assistCmd) Usage() string {
	return `invt assist [-id <portfolio_id> -d <point>] <question>

  Asks the assistant a question. When a portfolio and a point in time are
  given, its valuation is shared with the assistant as context.
  Requires Gemini credentials in the environment.

Usage Examples:
$ invt assist -id 9 -d 2024-06 how is my portfolio doing?

`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the portfolio to discuss.")
	f.StringVar(&c.date, "d", "", "Point in time to value the portfolio at.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a question is required.")
		return subcommands.ExitUsageError
	}
	prompt := strings.Join(f.Args(), " ")

	if c.id != 0 && c.date != "" {
		facts, err := c.portfolioFacts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error gathering portfolio facts: %v\n", err)
			return subcommands.ExitFailure
		}
		prompt = facts + "\n\n" + prompt
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	chat, err := client.Chats.Create(ctx, model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the chat:", err)
		return subcommands.ExitFailure
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())

	return subcommands.ExitSuccess
}

// portfolioFacts values the portfolio and renders the result as a small
// context block for the assistant.
func (c *assistCmd) portfolioFacts() (string, error) {
	on, err := timepoint.Parse(c.date)
	if err != nil {
		return "", err
	}
	db := OpenDatabase()
	p, err := db.LoadPortfolio(c.id)
	if err != nil {
		return "", err
	}
	value, err := p.PriceAt(on)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Context: a portfolio of %d investments, worth %s on %s.\n", p.Len(), tracker.M(value, *baseCurrency), on)
	for inv := range p.Investments() {
		fmt.Fprintf(&b, "- %s: principal %v invested on %s\n", inv.Vehicle().Symbol(), inv.Principal(), inv.When())
	}
	return b.String(), nil
}
