package macrolens

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	prices := series(t, "2024-01-01", 100.0, "2024-01-02", 110.0, "2024-01-03", 121.0)
	macro := series(t, "2024-01-01", 100.0, "2024-01-03", 105.0)
	table, err := AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	s, err := Summarize(table)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}

	if !s.NominalReturn.Equal(Percent(21)) {
		t.Errorf("nominal return = %s, want 21.00%%", s.NominalReturn)
	}
	if !s.RealReturn.Equal(Percent(15.238095)) {
		t.Errorf("real return = %s, want 15.24%%", s.RealReturn)
	}
	if !s.Erosion.Equal(Percent(5.761905)) {
		t.Errorf("erosion = %s, want 5.76%%", s.Erosion)
	}
	// Pearson of ([100,110,121], [100,100,105]) worked out by hand:
	// 480/sqrt(1986*150).
	want := 480 / math.Sqrt(1986*150)
	if math.Abs(s.Correlation-want) > 1e-9 {
		t.Errorf("correlation = %v, want %v", s.Correlation, want)
	}
	if s.Range != NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-01-03")) {
		t.Errorf("range = %s covers the wrong days", s.Range)
	}
}

func TestSummarize_ErosionIsNominalMinusReal(t *testing.T) {
	prices := series(t, "2024-01-01", 250.0, "2024-02-01", 243.1, "2024-03-01", 260.9)
	macro := series(t, "2024-01-01", 300.0, "2024-02-01", 301.2, "2024-03-01", 303.7)
	table, err := AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	s, err := Summarize(table)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if !s.Erosion.Equal(s.NominalReturn - s.RealReturn) {
		t.Errorf("erosion %s != nominal %s - real %s", s.Erosion, s.NominalReturn, s.RealReturn)
	}
}

func TestSummarize_ZeroVariance(t *testing.T) {
	// A constant macro series across the window makes the correlation
	// undefined: the failure must be typed, not a silent NaN.
	prices := series(t, "2024-01-01", 100.0, "2024-01-02", 110.0, "2024-01-03", 121.0)
	macro := series(t, "2024-01-01", 100.0, "2024-01-03", 100.0)
	table, err := AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	_, err = Summarize(table)
	if !errors.Is(err, ErrUndefinedCorrelation) {
		t.Fatalf("got %v, want ErrUndefinedCorrelation", err)
	}
}

func TestSummarize_TooFewRows(t *testing.T) {
	prices := series(t, "2024-01-01", 100.0)
	macro := series(t, "2024-01-01", 100.0)
	table, err := AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	var insufficient *InsufficientDataError
	if _, err := Summarize(table); !errors.As(err, &insufficient) {
		t.Fatalf("got %v, want InsufficientDataError", err)
	}
}

func TestPearson(t *testing.T) {
	if c, err := pearson([]float64{1, 2, 3}, []float64{2, 4, 6}); err != nil || math.Abs(c-1) > 1e-9 {
		t.Errorf("perfectly correlated: got %v, %v", c, err)
	}
	if c, err := pearson([]float64{1, 2, 3}, []float64{6, 4, 2}); err != nil || math.Abs(c+1) > 1e-9 {
		t.Errorf("perfectly anti-correlated: got %v, %v", c, err)
	}
	if _, err := pearson([]float64{1, 2, 3}, []float64{5, 5, 5}); !errors.Is(err, ErrUndefinedCorrelation) {
		t.Errorf("constant sample: got %v, want ErrUndefinedCorrelation", err)
	}
}
