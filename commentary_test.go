package macrolens

import (
	"strings"
	"testing"
)

func TestSentiment(t *testing.T) {
	cases := []struct {
		corr float64
		want string
	}{
		{0.9, "High correlation"},
		{0.71, "High correlation"},
		{0.7, "Moderate correlation"}, // threshold is strict
		{0.31, "Moderate correlation"},
		{0.3, "Low correlation"},
		{-0.5, "Low correlation"},
	}
	for _, c := range cases {
		if got := Sentiment(c.corr); got != c.want {
			t.Errorf("Sentiment(%v) = %q, want %q", c.corr, got, c.want)
		}
	}
}

func TestCommentary(t *testing.T) {
	s := Summary{
		Range:         NewRange(MustParseDate("2010-01-04"), MustParseDate("2024-12-31")),
		NominalReturn: 250.0,
		RealReturn:    120.5,
		Erosion:       129.5,
		Correlation:   0.85,
	}

	text := Commentary(s)
	for _, want := range []string{"Since 2010", "250.0%", "120.5%", "129.5%", "High correlation"} {
		if !strings.Contains(text, want) {
			t.Errorf("commentary misses %q:\n%s", want, text)
		}
	}
}
