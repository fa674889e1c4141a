package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/macrolens"
	"github.com/etnz/macrolens/config"
	"github.com/etnz/macrolens/renderer"
	"github.com/google/subcommands"
)

// reportCmd is the main operation: fetch, align, summarize, render.
type reportCmd struct {
	rangeFlags
	sourceFlags
	raw   bool
	quote bool
	rows  int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "analyze nominal vs. real returns over a date range" }
func (*reportCmd) Usage() string {
	return `report [-from <date>] [-to <date>] [-ticker <ticker>] [-macro fred|insee] [-id <series>]

  Fetches the equity index and the inflation series, aligns them onto the
  trading calendar, and reports Base-100 indices, real purchasing power and
  summary statistics.

Usage Examples:
# Dow Jones vs US CPI since 2010.
$ mlens report

# CAC 40 vs French CPI for the 2020s.
$ mlens report -ticker FCHI.INDX -macro insee -id 001759970 -from 2020-01-01

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load configuration: %v\n", err)
	}
	c.rangeFlags.register(f)
	c.sourceFlags.register(f, cfg)
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering for the terminal")
	f.BoolVar(&c.quote, "quote", false, "also fetch the live index level")
	f.IntVar(&c.rows, "rows", 0, "max detail rows in the report (0 for default)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	latest := math.NaN()
	if c.quote {
		latest, err = macrolens.LatestQuote(cfg.QuoteInstrument)
		if err != nil {
			// The live quote is decoration: the analysis stands without it.
			fmt.Fprintf(os.Stderr, "Warning: could not fetch live quote: %v\n", err)
			latest = math.NaN()
		}
	}

	markdown := renderer.ReportMarkdown(report, renderer.Options{
		Currency:    "USD",
		LatestQuote: latest,
		Commentary:  macrolens.Commentary(report.Summary),
		MaxRows:     c.rows,
	})

	if c.raw {
		fmt.Println(markdown)
		return subcommands.ExitSuccess
	}

	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to raw markdown rather than failing the whole report.
		fmt.Println(markdown)
		return subcommands.ExitSuccess
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
