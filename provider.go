package macrolens

// External data sources. The core treats them as plain series suppliers: it
// never retries them and propagates their failures opaquely.

// PriceProvider fetches a daily (or business-daily) equity close series for a
// symbol. Dates with no trading activity may be absent.
type PriceProvider interface {
	// ID identifies the source and symbol, e.g. "eodhd:DJI.INDX". It is part
	// of the memoization key.
	ID() string
	// Prices returns the close series restricted to r.
	Prices(r Range) (*Series, error)
}

// MacroProvider fetches a lower-frequency macro series (typically a monthly
// consumer-price index) for an index identifier. It may return readings dated
// before the range start; the Analysis boundary excludes them before
// alignment.
type MacroProvider interface {
	// ID identifies the source and series, e.g. "fred:CPIAUCSL".
	ID() string
	// Series returns the macro readings overlapping r.
	Series(r Range) (*Series, error)
}
