package renderer

import (
	"math"
	"strings"
	"testing"

	"github.com/etnz/macrolens"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func report(t *testing.T) *macrolens.Report {
	t.Helper()
	prices := &macrolens.Series{}
	prices.Append(macrolens.NewDate(2024, 1, 1), 100)
	prices.Append(macrolens.NewDate(2024, 1, 2), 110)
	prices.Append(macrolens.NewDate(2024, 1, 3), 121)
	macro := &macrolens.Series{}
	macro.Append(macrolens.NewDate(2024, 1, 1), 100)
	macro.Append(macrolens.NewDate(2024, 1, 3), 105)

	table, err := macrolens.AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}
	summary, err := macrolens.Summarize(table)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	return &macrolens.Report{
		PriceSource: "eodhd:DJI.INDX",
		MacroSource: "fred:CPIAUCSL",
		Requested:   summary.Range,
		Table:       table,
		Summary:     summary,
	}
}

// headings parses the markdown and returns the text of every heading, to
// check the document structure rather than its exact bytes.
func headings(t *testing.T, source string) []string {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader([]byte(source)))

	var got []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value([]byte(source)))
			}
			got = append(got, strings.TrimSpace(sb.String()))
		}
		return ast.WalkContinue, nil
	})
	return got
}

func TestReportMarkdown(t *testing.T) {
	r := report(t)
	out := ReportMarkdown(r, Options{
		Currency:    "USD",
		LatestQuote: math.NaN(),
		Commentary:  "**Executive Summary:** test commentary.",
	})

	hs := headings(t, out)
	if len(hs) == 0 || !strings.Contains(hs[0], "Nominal vs. Real Returns") {
		t.Fatalf("missing title heading, got %v", hs)
	}
	for _, want := range []string{"Macro-Analytic Summary", "Automated Market Commentary", "Indexed Series"} {
		found := false
		for _, h := range hs {
			if h == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing %q heading, got %v", want, hs)
		}
	}

	for _, want := range []string{"Nominal ROI", "+21.00%", "Correlation Factor", "test commentary", "eodhd:DJI.INDX", "fred:CPIAUCSL"} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q", want)
		}
	}
}

func TestReportMarkdown_OmitsEmptySections(t *testing.T) {
	r := report(t)
	out := ReportMarkdown(r, Options{Currency: "USD"})

	for _, h := range headings(t, out) {
		if h == "Automated Market Commentary" {
			t.Error("empty commentary must omit the section")
		}
	}
	if strings.Contains(out, "Live level") {
		t.Error("zero quote must omit the live level line")
	}
}

func TestSparkline(t *testing.T) {
	r := report(t)

	s := []rune(sparkline(r.Table, func(row macrolens.Row) float64 { return row.PriceIndex }))
	if len(s) != r.Table.Len() {
		t.Fatalf("got %d ticks, want one per row", len(s))
	}
	// the price index is strictly rising: lowest tick first, highest last
	if s[0] != '▁' {
		t.Errorf("first tick = %q, want the lowest", s[0])
	}
	if s[len(s)-1] != '█' {
		t.Errorf("last tick = %q, want the highest", s[len(s)-1])
	}

	// a constant column stays on the floor rather than dividing by zero
	flat := sparkline(r.Table, func(macrolens.Row) float64 { return 42 })
	for _, tick := range flat {
		if tick != '▁' {
			t.Fatalf("flat series rendered %q", flat)
		}
	}
}

func TestSparkline_Downsamples(t *testing.T) {
	prices := &macrolens.Series{}
	macro := &macrolens.Series{}
	macro.Append(macrolens.NewDate(2024, 1, 1), 100)
	for i := 0; i < 200; i++ {
		prices.Append(macrolens.NewDate(2024, 1, 1).Add(i), 100+float64(i))
	}
	table, err := macrolens.AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	s := []rune(sparkline(table, func(row macrolens.Row) float64 { return row.PriceIndex }))
	if len(s) != sparkWidth {
		t.Errorf("got %d ticks, want %d", len(s), sparkWidth)
	}
}

func TestDetailTable_SamplesButKeepsEndpoints(t *testing.T) {
	prices := &macrolens.Series{}
	macro := &macrolens.Series{}
	macro.Append(macrolens.NewDate(2024, 1, 1), 100)
	for i := 0; i < 100; i++ {
		prices.Append(macrolens.NewDate(2024, 1, 1).Add(i), 100+float64(i))
	}
	table, err := macrolens.AlignAndIndex(prices, macro)
	if err != nil {
		t.Fatalf("AlignAndIndex() failed: %v", err)
	}

	set := detailTable(table, 10)
	if len(set.Rows) > 12 {
		t.Errorf("got %d rows, want at most 12", len(set.Rows))
	}
	first, last := set.Rows[0], set.Rows[len(set.Rows)-1]
	if first[0] != "2024-01-01" {
		t.Errorf("first sampled row is %s, want the first day", first[0])
	}
	if last[0] != macrolens.NewDate(2024, 1, 1).Add(99).String() {
		t.Errorf("last sampled row is %s, want the last day", last[0])
	}
}
