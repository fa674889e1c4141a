package macrolens

import "fmt"

// Sentiment qualifies the strength of the correlation between the equity
// index and the macro index.
func Sentiment(correlation float64) string {
	switch {
	case correlation > 0.7:
		return "High correlation"
	case correlation > 0.3:
		return "Moderate correlation"
	default:
		return "Low correlation"
	}
}

// Commentary produces the deterministic executive summary of an analysis.
// It is plain templated text over the already-computed summary, so it needs
// no model, no network, and always agrees with the numbers in the report.
func Commentary(s Summary) string {
	return fmt.Sprintf(
		"**Executive Summary:** Since %d, the index grew **%.1f%%**. "+
			"Adjusted for inflation, purchasing power grew **%.1f%%**.\n\n"+
			"**Portfolio Impact:** %s. To maintain real wealth, an investor "+
			"needed to beat an inflation hurdle of **%.1f%%**.",
		s.Range.From.Year(),
		float64(s.NominalReturn),
		float64(s.RealReturn),
		Sentiment(s.Correlation),
		float64(s.Erosion),
	)
}
