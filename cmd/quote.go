package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/macrolens"
	"github.com/etnz/macrolens/config"
	"github.com/google/subcommands"
)

// quoteCmd prints the live level of the index.
type quoteCmd struct {
	instrument string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the live index level" }
func (*quoteCmd) Usage() string {
	return `quote [-instrument <id>]

  Prints the current level of the index from the LS Exchange mini-chart
  endpoint.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load configuration: %v\n", err)
	}
	f.StringVar(&c.instrument, "instrument", cfg.QuoteInstrument, "LS Exchange instrument id")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	val, err := macrolens.LatestQuote(c.instrument)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%.2f\n", val)
	return subcommands.ExitSuccess
}
