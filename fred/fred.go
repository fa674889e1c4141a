// Package fred fetches macro time series from the Federal Reserve Economic
// Data (FRED) fredgraph CSV endpoint. No API key is required.
package fred

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/etnz/macrolens"
)

const defaultBaseURL = "https://fred.stlouisfed.org"

// Provider fetches a single FRED series, e.g. "CPIAUCSL" (Consumer Price
// Index for All Urban Consumers). It implements macrolens.MacroProvider.
type Provider struct {
	seriesID string
	baseURL  string
	client   *http.Client
}

// New returns a Provider for the given FRED series id.
func New(seriesID string) *Provider {
	return &Provider{
		seriesID: seriesID,
		baseURL:  defaultBaseURL,
		client:   macrolens.NewDailyCachingClient(),
	}
}

// ID identifies this source for memoization and error messages.
func (p *Provider) ID() string { return "fred:" + p.seriesID }

// Series returns the readings of the series overlapping r, at the series'
// native frequency (monthly for CPI, dated on the first of the month). FRED
// may include an observation dated before r.From; callers truncate.
func (p *Provider) Series(r macrolens.Range) (*macrolens.Series, error) {
	// https://fred.stlouisfed.org/graph/fredgraph.csv?id=CPIAUCSL&cosd=2010-01-01&coed=2024-12-31
	addr := fmt.Sprintf("%s/graph/fredgraph.csv?id=%s&cosd=%s&coed=%s", p.baseURL, p.seriesID, r.From, r.To)

	resp, err := p.client.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download from FRED for series %s: %w", p.seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from FRED for series %s: received status %s", p.seriesID, resp.Status)
	}

	return parseSeries(resp.Body)
}

// parseSeries reads the fredgraph CSV format from an io.Reader.
//
// The payload is a two-column CSV, a header line ("observation_date,<ID>",
// "DATE,<ID>" on older exports) followed by one observation per line.
// Missing observations are encoded as ".".
func parseSeries(r io.Reader) (*macrolens.Series, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("empty csv: no header line")
	}

	series := &macrolens.Series{}
	for _, record := range records[1:] {
		if len(record) != 2 {
			return nil, fmt.Errorf("unexpected csv record %q: want 2 fields", record)
		}
		if record[1] == "." {
			// FRED publishes "." for a missing observation.
			continue
		}
		date, err := macrolens.ParseDate(record[0])
		if err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", record[1], record[0], err)
		}
		series.Append(date, val)
	}
	return series, nil
}

var _ macrolens.MacroProvider = (*Provider)(nil)
