package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/macrolens/config"
	"github.com/google/subcommands"
)

// tableCmd dumps the aligned table as CSV for external tooling.
type tableCmd struct {
	rangeFlags
	sourceFlags
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "dump the aligned daily table as CSV" }
func (*tableCmd) Usage() string {
	return `table [-from <date>] [-to <date>] [-ticker <ticker>] [-macro fred|insee] [-id <series>]

  Prints the aligned table to stdout: one row per trading day with the raw
  price, the forward-filled macro value, both Base-100 indices and the
  real-value index.

Usage Examples:
$ mlens table -from 2020-01-01 -to 2020-12-31 > djia_vs_cpi_2020.csv

`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load configuration: %v\n", err)
	}
	c.rangeFlags.register(f)
	c.sourceFlags.register(f, cfg)
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"date", "price", "macro", "price_index", "macro_index", "real_index"})
	for _, row := range report.Table.Rows {
		w.Write([]string{
			row.Date.String(),
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			strconv.FormatFloat(row.MacroValue, 'f', -1, 64),
			strconv.FormatFloat(row.PriceIndex, 'f', 6, 64),
			strconv.FormatFloat(row.MacroIndex, 'f', 6, 64),
			strconv.FormatFloat(row.RealIndex, 'f', 6, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
