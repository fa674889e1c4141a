package macrolens

import "math"

// Summary holds the scalars derived from an AlignedTable. They are computed
// fresh on every call and never persisted.
type Summary struct {
	Range         Range   // first and last aligned dates
	NominalReturn Percent // total growth of the price index
	RealReturn    Percent // total growth of the real-value index
	Erosion       Percent // nominal minus real: the part inflation consumed
	Correlation   float64 // Pearson between price index and macro index
}

// Summarize computes the summary statistics of an aligned table.
//
// The table must have at least 2 rows, otherwise there is no return to
// measure and it returns an InsufficientDataError. If either index column is
// constant the Pearson correlation is undefined and Summarize returns
// ErrUndefinedCorrelation rather than a not-a-number value.
func Summarize(table *AlignedTable) (Summary, error) {
	if table.Len() < 2 {
		return Summary{}, &InsufficientDataError{Reason: "at least 2 aligned rows are required for summary statistics"}
	}

	last := table.Last()
	nominal := Percent((last.PriceIndex/100 - 1) * 100)
	real := Percent((last.RealIndex/100 - 1) * 100)

	prices := make([]float64, 0, table.Len())
	macros := make([]float64, 0, table.Len())
	for _, row := range table.Rows {
		prices = append(prices, row.PriceIndex)
		macros = append(macros, row.MacroIndex)
	}
	corr, err := pearson(prices, macros)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Range:         NewRange(table.First().Date, last.Date),
		NominalReturn: nominal,
		RealReturn:    real,
		Erosion:       nominal - real,
		Correlation:   corr,
	}, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// samples. It returns ErrUndefinedCorrelation when either sample has zero
// variance.
func pearson(xs, ys []float64) (float64, error) {
	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, ErrUndefinedCorrelation
	}
	return cov / math.Sqrt(varX*varY), nil
}
