// Package renderer turns an analysis report into markdown. It is mechanical
// presentation over the already-computed result: nothing here recomputes a
// number.
package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/etnz/macrolens"
	md "github.com/nao1215/markdown"
)

// Options holds the presentation knobs of the report.
type Options struct {
	Currency    string  // currency of the raw price levels, e.g. "USD"
	LatestQuote float64 // live index level, NaN to omit the line
	Commentary  string  // markdown commentary, empty to omit the section
	MaxRows     int     // cap on the detail table, 0 for the default
}

// defaultMaxRows keeps the detail table readable on a terminal.
const defaultMaxRows = 12

// ReportMarkdown renders the full analysis report to a markdown string.
func ReportMarkdown(r *macrolens.Report, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := r.Summary
	doc.H1(fmt.Sprintf("Nominal vs. Real Returns (Base 100), %s", s.Range))
	doc.PlainText(fmt.Sprintf("Sources: %s, deflated by %s.", r.PriceSource, r.MacroSource))

	first, last := r.Table.First(), r.Table.Last()
	doc.PlainText(fmt.Sprintf("Index level went from %s on %s to %s on %s.",
		level(first.Price, opts.Currency), first.Date,
		level(last.Price, opts.Currency), last.Date))
	if !math.IsNaN(opts.LatestQuote) && opts.LatestQuote != 0 {
		doc.PlainText(fmt.Sprintf("Live level: %s.", level(opts.LatestQuote, opts.Currency)))
	}

	doc.H2("Macro-Analytic Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Nominal ROI", s.NominalReturn.SignedString()},
			{"Real ROI", s.RealReturn.SignedString()},
			{"Inflation Erosion", s.Erosion.SignedString()},
			{"Correlation Factor", fmt.Sprintf("%.2f", s.Correlation)},
		},
	})

	if opts.Commentary != "" {
		doc.H2("Automated Market Commentary")
		doc.PlainText(opts.Commentary)
	}

	doc.H2("Indexed Series")
	doc.PlainText(fmt.Sprintf("Nominal   `%s`", sparkline(r.Table, func(row macrolens.Row) float64 { return row.PriceIndex })))
	doc.PlainText(fmt.Sprintf("Inflation `%s`", sparkline(r.Table, func(row macrolens.Row) float64 { return row.MacroIndex })))
	doc.PlainText(fmt.Sprintf("Real      `%s`", sparkline(r.Table, func(row macrolens.Row) float64 { return row.RealIndex })))
	doc.Table(detailTable(r.Table, opts.MaxRows))

	return doc.String()
}

// sparkTicks are the block characters of a text sparkline, lowest to highest.
var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// sparkWidth caps the sparkline so it fits a terminal next to its label.
const sparkWidth = 60

// sparkline draws one column of the table as a block-character sparkline,
// downsampled to at most sparkWidth points.
func sparkline(t *macrolens.AlignedTable, column func(macrolens.Row) float64) string {
	values := make([]float64, 0, t.Len())
	for _, row := range t.Rows {
		values = append(values, column(row))
	}
	if len(values) > sparkWidth {
		sampled := make([]float64, 0, sparkWidth)
		for i := 0; i < sparkWidth; i++ {
			sampled = append(sampled, values[i*len(values)/sparkWidth])
		}
		sampled[sparkWidth-1] = values[len(values)-1]
		values = sampled
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	runes := make([]rune, 0, len(values))
	for _, v := range values {
		i := 0
		if hi > lo {
			i = int((v - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		}
		runes = append(runes, sparkTicks[i])
	}
	return string(runes)
}

// level formats a raw index level as money. Index points are not strictly a
// currency amount, but the price feed quotes them in one.
func level(v float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	cur := money.GetCurrency(currency)
	return money.New(int64(math.Round(v*math.Pow10(cur.Fraction))), currency).Display()
}

// detailTable samples the aligned table down to at most maxRows rows, always
// keeping the first and last.
func detailTable(t *macrolens.AlignedTable, maxRows int) md.TableSet {
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}

	set := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Nominal", "Inflation", "Real"},
	}

	n := t.Len()
	step := 1
	if n > maxRows {
		step = (n + maxRows - 1) / maxRows
	}
	for i := 0; i < n; i += step {
		set.Rows = append(set.Rows, detailRow(t.Rows[i]))
	}
	// the last row carries the totals, never sample it away
	if (n-1)%step != 0 {
		set.Rows = append(set.Rows, detailRow(t.Rows[n-1]))
	}
	return set
}

func detailRow(r macrolens.Row) []string {
	return []string{
		r.Date.String(),
		fmt.Sprintf("%.2f", r.PriceIndex),
		fmt.Sprintf("%.2f", r.MacroIndex),
		fmt.Sprintf("%.2f", r.RealIndex),
	}
}
