package macrolens

// This file contains the alignment and indexing engine, the one part of the
// system with real semantic subtlety. It is a pure function of its inputs.

// Row is a single day of the aligned table. All numeric columns are defined:
// rows that could not be resolved never make it into the table.
type Row struct {
	Date       Date    `json:"date"`
	Price      float64 `json:"price"`       // raw close price
	MacroValue float64 `json:"macro"`       // raw macro reading, forward-filled
	PriceIndex float64 `json:"price_index"` // Base 100 on the first aligned day
	MacroIndex float64 `json:"macro_index"` // Base 100 on the first aligned day
	RealIndex  float64 `json:"real_index"`  // PriceIndex deflated by MacroIndex
}

// AlignedTable is the result of aligning a price series with a macro series:
// one row per resolvable price date, in price-calendar order.
type AlignedTable struct {
	Rows []Row
}

// Len returns the number of rows in the table.
func (t *AlignedTable) Len() int { return len(t.Rows) }

// First returns the first row of the table. It panics on an empty table,
// which AlignAndIndex never returns.
func (t *AlignedTable) First() Row { return t.Rows[0] }

// Last returns the last row of the table. It panics on an empty table.
func (t *AlignedTable) Last() Row { return t.Rows[len(t.Rows)-1] }

// AlignAndIndex merges a daily price series with a lower-frequency macro
// series into one coherent daily table and derives Base-100 indices.
//
// The price calendar is authoritative: no price date is ever inserted or
// removed. Each price date is joined with the most recent macro reading at or
// before it (forward fill). Leading price dates with no reading yet are
// dropped, modelling the unavoidable warm-up before the first macro reading
// inside the range. There is no lookahead: a reading never applies to a date
// before its own.
//
// Both inputs must already be restricted to the requested range by the
// caller (see Series.Truncate); AlignAndIndex never reaches outside the data
// it is given, so a macro reading recorded before the range start cannot
// silently become the join anchor.
//
// It returns an InsufficientDataError if no row survives, and an
// InvalidInputError if any joined price or macro value is not strictly
// positive.
func AlignAndIndex(prices, macro *Series) (*AlignedTable, error) {
	if prices.Len() == 0 {
		return nil, &InsufficientDataError{Reason: "price series is empty"}
	}
	if macro.Len() == 0 {
		return nil, &InsufficientDataError{Reason: "macro series is empty"}
	}

	rows := make([]Row, 0, prices.Len())
	for on, price := range prices.Values() {
		value, ok := macro.ValueAsOf(on)
		if !ok {
			// Warm-up: no macro reading yet to carry forward. Only leading
			// rows can be unresolved, so this is always a leading drop.
			continue
		}
		if price <= 0 {
			return nil, &InvalidInputError{Column: "price", Date: on, Value: price}
		}
		if value <= 0 {
			return nil, &InvalidInputError{Column: "macro", Date: on, Value: value}
		}
		rows = append(rows, Row{Date: on, Price: price, MacroValue: value})
	}

	if len(rows) == 0 {
		return nil, &InsufficientDataError{Reason: "no price date has a macro reading at or before it"}
	}

	// Rebase both series on the first aligned day.
	p0, m0 := rows[0].Price, rows[0].MacroValue
	for i := range rows {
		rows[i].PriceIndex = rows[i].Price / p0 * 100
		rows[i].MacroIndex = rows[i].MacroValue / m0 * 100
		rows[i].RealIndex = rows[i].PriceIndex / rows[i].MacroIndex * 100
	}

	return &AlignedTable{Rows: rows}, nil
}
