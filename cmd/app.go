// Package cmd implements the mlens CLI application.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/macrolens"
	"github.com/etnz/macrolens/config"
	"github.com/etnz/macrolens/eodhd"
	"github.com/etnz/macrolens/fred"
	"github.com/etnz/macrolens/insee"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of mlens. A main package registers them all
// and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&tableCmd{},
	&quoteCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

// memo caches fetch-and-align results by (sources, range) within the process.
var memo = macrolens.NewMemo()

// rangeFlags are the date-range flags shared by every analysis command.
type rangeFlags struct {
	from string
	to   string
}

func (r *rangeFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.from, "from", "2010-01-01", "analysis start date (YYYY-MM-DD)")
	f.StringVar(&r.to, "to", macrolens.Today().String(), "analysis end date (YYYY-MM-DD)")
}

func (r *rangeFlags) parse() (macrolens.Range, error) {
	from, err := macrolens.ParseDate(r.from)
	if err != nil {
		return macrolens.Range{}, err
	}
	to, err := macrolens.ParseDate(r.to)
	if err != nil {
		return macrolens.Range{}, err
	}
	return macrolens.NewRange(from, to), nil
}

// sourceFlags select the data sources, defaulting to the configuration.
type sourceFlags struct {
	ticker      string
	macroSource string
	macroID     string
}

func (s *sourceFlags) register(f *flag.FlagSet, cfg config.Config) {
	f.StringVar(&s.ticker, "ticker", cfg.Ticker, "EODHD ticker of the equity index")
	f.StringVar(&s.macroSource, "macro", cfg.MacroSource, "macro data source: fred or insee")
	f.StringVar(&s.macroID, "id", cfg.MacroID, "series id within the macro source")
}

// analysis builds the Analysis over the selected providers.
func (s *sourceFlags) analysis(cfg config.Config) (*macrolens.Analysis, error) {
	prices := eodhd.New(cfg.EODHDAPIKey, s.ticker)

	var macro macrolens.MacroProvider
	switch s.macroSource {
	case "fred":
		macro = fred.New(s.macroID)
	case "insee":
		macro = insee.New(s.macroID)
	default:
		return nil, fmt.Errorf("unknown macro source %q: want fred or insee", s.macroSource)
	}

	return macrolens.NewAnalysis(prices, macro), nil
}
