package macrolens

import "fmt"

// Report is the full result of one analysis: the aligned table, its summary
// statistics, and the raw series endpoints the presentation layer needs.
type Report struct {
	PriceSource string
	MacroSource string
	Requested   Range // the range the user asked for
	Table       *AlignedTable
	Summary     Summary
}

// Analysis is the I/O boundary around the pure engine. It owns the two
// providers and the caller-side obligations the engine refuses to take on:
// truncating the macro series to the requested range before the join.
//
// An Analysis is safe for concurrent use if its providers are.
type Analysis struct {
	prices PriceProvider
	macro  MacroProvider
}

// NewAnalysis creates an Analysis over the given providers.
func NewAnalysis(prices PriceProvider, macro MacroProvider) *Analysis {
	return &Analysis{prices: prices, macro: macro}
}

// Run fetches both series, aligns and indexes them, and computes the summary
// statistics.
//
// Provider failures are returned wrapped but otherwise untouched. A provider
// that returns no data at all inside the range is reported as an
// InsufficientDataError, since from the caller's point of view the requested
// analysis has nothing to stand on.
func (a *Analysis) Run(r Range) (*Report, error) {
	prices, err := a.prices.Prices(r)
	if err != nil {
		return nil, fmt.Errorf("fetching prices from %s: %w", a.prices.ID(), err)
	}
	// The engine treats the price calendar as authoritative, so it must not
	// carry dates outside the requested range.
	prices = prices.Truncate(r)
	if prices.Len() == 0 {
		return nil, &InsufficientDataError{Reason: fmt.Sprintf("%s returned no prices %s", a.prices.ID(), r)}
	}

	macro, err := a.macro.Series(r)
	if err != nil {
		return nil, fmt.Errorf("fetching macro series from %s: %w", a.macro.ID(), err)
	}
	// A macro reading recorded before the range start must not become the
	// join anchor: truncation is this layer's job, not the engine's.
	macro = macro.Truncate(r)
	if macro.Len() == 0 {
		return nil, &InsufficientDataError{Reason: fmt.Sprintf("%s returned no readings %s", a.macro.ID(), r)}
	}

	table, err := AlignAndIndex(prices, macro)
	if err != nil {
		return nil, err
	}
	summary, err := Summarize(table)
	if err != nil {
		return nil, err
	}

	return &Report{
		PriceSource: a.prices.ID(),
		MacroSource: a.macro.ID(),
		Requested:   r,
		Table:       table,
		Summary:     summary,
	}, nil
}

// Key is the memoization key of a Run call: both source identities and the
// requested range. A different range is a different key, so changing start or
// end can never serve a stale result.
func (a *Analysis) Key(r Range) string {
	return fmt.Sprintf("%s|%s|%s", a.prices.ID(), a.macro.ID(), r.Identifier())
}
