package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/macrolens"
	"github.com/etnz/macrolens/agent"
	"github.com/etnz/macrolens/config"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd starts an interactive AI session over the analysis.
type assistCmd struct {
	rangeFlags
	sourceFlags
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "discuss the analysis with an AI macro analyst"
}
func (*assistCmd) Usage() string {
	return `assist [-from <date>] [-to <date>] [-ticker <ticker>] [-macro fred|insee] [-id <series>]

  Runs the analysis, then starts an interactive session with an AI analyst
  that has the figures in context. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load configuration: %v\n", err)
	}
	c.rangeFlags.register(f)
	c.sourceFlags.register(f, cfg)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	analysis, err := c.analysis(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	report, err := memo.Run(analysis, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	briefing := fmt.Sprintf("Analysis of %s deflated by %s, %s.\n\n%s",
		report.PriceSource, report.MacroSource, report.Summary.Range,
		macrolens.Commentary(report.Summary))

	analyst := agent.NewAnalyst()
	if err := analyst.Run(ctx, client, os.Stdout, os.Stdin, briefing); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
