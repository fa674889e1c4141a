// Package eodhd fetches daily end-of-day equity prices from the EODHD API.
package eodhd

import (
	"fmt"
	"net/http"

	"github.com/etnz/macrolens"
	"github.com/shopspring/decimal"
)

// nice to redirect to https://eodhd.com/financial-summary/DJI.INDX

const defaultBaseURL = "https://eodhd.com"

// Provider fetches the daily close series of a single ticker. It implements
// macrolens.PriceProvider.
type Provider struct {
	apiKey  string
	ticker  string // EODHD ticker format, e.g. "DJI.INDX" or "MCD.US"
	baseURL string
	client  *http.Client
}

// New returns a Provider for the given ticker. The "demo" API key works for a
// handful of well-known tickers.
func New(apiKey, ticker string) *Provider {
	return &Provider{
		apiKey:  apiKey,
		ticker:  ticker,
		baseURL: defaultBaseURL,
		client:  macrolens.NewDailyCachingClient(),
	}
}

// ID identifies this source for memoization and error messages.
func (p *Provider) ID() string { return "eodhd:" + p.ticker }

// Prices returns the daily close series for the provider's ticker restricted
// to r. Days with no trading activity are simply absent from the response.
func (p *Provider) Prices(r macrolens.Range) (*macrolens.Series, error) {
	// https://eodhd.com/api/eod/DJI.INDX?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 38632.84,
	//		"high": 38652.3,
	//		"low": 38185.34,
	//		"close": 38272.75,
	//		"adjusted_close": 38272.75,
	//		"volume": 371290000
	//	},
	// bounds are included in the response, and time is limited to 1 year with
	// free subscription.

	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", p.baseURL, p.ticker, p.apiKey, r.From, r.To)
	type info struct {
		Date  macrolens.Date  `json:"date"`
		Close decimal.Decimal `json:"close"`
	}

	content := make([]info, 0)
	if err := macrolens.GetJSON(p.client, addr, &content); err != nil {
		return nil, err
	}

	series := &macrolens.Series{}
	for _, day := range content {
		series.Append(day.Date, day.Close.InexactFloat64())
	}
	return series, nil
}

var _ macrolens.PriceProvider = (*Provider)(nil)
