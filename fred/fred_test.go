package fred

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/macrolens"
)

const csvData = `observation_date,CPIAUCSL
2024-01-01,308.417
2024-02-01,310.326
2024-03-01,.
2024-04-01,313.548
`

func TestParseSeries(t *testing.T) {
	series, err := parseSeries(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("parseSeries() failed: %v", err)
	}

	// the "." observation is missing data, not a zero
	if series.Len() != 3 {
		t.Fatalf("got %d values, want 3", series.Len())
	}
	if v, ok := series.Get(macrolens.NewDate(2024, 2, 1)); !ok || v != 310.326 {
		t.Errorf("for 2024-02-01, got %v, %v, want 310.326", v, ok)
	}
	if _, ok := series.Get(macrolens.NewDate(2024, 3, 1)); ok {
		t.Error("missing observation must not produce a point")
	}
}

func TestParseSeries_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{
			name:    "bad value",
			csvData: "DATE,CPIAUCSL\n2024-01-01,not-a-number\n",
		},
		{
			name:    "bad date",
			csvData: "DATE,CPIAUCSL\nJanuary,308.417\n",
		},
		{
			name:    "wrong field count",
			csvData: "DATE,CPIAUCSL\n2024-01-01\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseSeries(strings.NewReader(tc.csvData)); err == nil {
				t.Error("parseSeries() should have failed")
			}
		})
	}
}

func TestProvider_Series(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(csvData))
	}))
	defer srv.Close()

	p := &Provider{seriesID: "CPIAUCSL", baseURL: srv.URL, client: srv.Client()}
	r := macrolens.NewRange(macrolens.NewDate(2024, 1, 1), macrolens.NewDate(2024, 4, 30))

	series, err := p.Series(r)
	if err != nil {
		t.Fatalf("Series() failed: %v", err)
	}
	if series.Len() != 3 {
		t.Errorf("got %d values, want 3", series.Len())
	}
	for _, want := range []string{"id=CPIAUCSL", "cosd=2024-01-01", "coed=2024-04-30"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q misses %q", gotQuery, want)
		}
	}
}

func TestProvider_Series_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such series", http.StatusNotFound)
	}))
	defer srv.Close()

	p := &Provider{seriesID: "NOPE", baseURL: srv.URL, client: srv.Client()}
	r := macrolens.NewRange(macrolens.NewDate(2024, 1, 1), macrolens.NewDate(2024, 4, 30))
	if _, err := p.Series(r); err == nil {
		t.Fatal("Series() should fail on a non-200 response")
	}
}
