// Package insee fetches macro time series from the INSEE BDM database, the
// French statistics institute. It is the macro source to use when analyzing
// an index against the French consumer-price index instead of the US one.
package insee

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/macrolens"
)

const defaultBaseURL = "https://bdm.insee.fr"

// Provider fetches a single INSEE series identified by its idBank, e.g.
// "001759970" for the CPI (ensemble des ménages). It implements
// macrolens.MacroProvider.
type Provider struct {
	idBank  string
	baseURL string
	client  *http.Client
}

// New returns a Provider for the given INSEE idBank.
func New(idBank string) *Provider {
	return &Provider{
		idBank:  idBank,
		baseURL: defaultBaseURL,
		client:  macrolens.NewDailyCachingClient(),
	}
}

// ID identifies this source for memoization and error messages.
func (p *Provider) ID() string { return "insee:" + p.idBank }

// Series downloads and parses the INSEE series overlapping r. Readings are
// dated at the end of their period (month or quarter), so a reading never
// applies before the period it measures is over.
func (p *Provider) Series(r macrolens.Range) (*macrolens.Series, error) {
	startQuarter := (int(r.From.Month())-1)/3 + 1
	endQuarter := (int(r.To.Month())-1)/3 + 1

	addr := fmt.Sprintf("%s/series/%s/csv?lang=fr&ordre=antechronologique&transposition=donneescolonne&periodeDebut=%d&anneeDebut=%d&periodeFin=%d&anneeFin=%d&revision=sansrevisions",
		p.baseURL,
		p.idBank,
		startQuarter,
		r.From.Year(),
		endQuarter,
		r.To.Year(),
	)

	resp, err := p.client.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: %w", p.idBank, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: received status %s", p.idBank, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive from INSEE response: %w", err)
	}

	var foundFiles []string
	for _, f := range zipReader.File {
		filename := f.Name
		foundFiles = append(foundFiles, filename)
		if filename == "valeurs_trimestrielles.csv" || filename == "valeurs_mensuelles.csv" {
			csvFile, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open '%s' from zip archive: %w", filename, err)
			}
			defer csvFile.Close()
			return parseSeries(csvFile)
		}
	}

	return nil, fmt.Errorf("could not find a values file (mensuelles or trimestrielles) in downloaded zip file for ID %s (found: %s)", p.idBank, strings.Join(foundFiles, ", "))
}

// parseInseeDate parses a string like "2025-T2" or "2025-08" into the Date
// that ends that period.
func parseInseeDate(s string) (macrolens.Date, error) {
	// Try quarterly format: "YYYY-TQ"
	if strings.Contains(s, "-T") {
		return parseQuarterlyDate(s)
	}

	// Try monthly format: "YYYY-MM"
	parts := strings.Split(s, "-")
	if len(parts) == 2 {
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return macrolens.Date{}, fmt.Errorf("invalid year in monthly date %q: %w", s, err)
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return macrolens.Date{}, fmt.Errorf("invalid month in monthly date %q: %w", s, err)
		}
		// Day 0 of the next month is the last day of this month.
		return macrolens.NewDate(year, time.Month(month)+1, 0), nil
	}
	return macrolens.Date{}, fmt.Errorf("unrecognized insee date format: %q", s)
}

// parseQuarterlyDate parses a string like "2025-T2" into the Date that ends
// that quarter.
func parseQuarterlyDate(s string) (macrolens.Date, error) {
	parts := strings.Split(s, "-T")
	if len(parts) != 2 {
		return macrolens.Date{}, fmt.Errorf("invalid quarterly date format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return macrolens.Date{}, fmt.Errorf("invalid year in quarterly date %q: %w", s, err)
	}

	quarter, err := strconv.Atoi(parts[1])
	if err != nil || quarter < 1 || quarter > 4 {
		return macrolens.Date{}, fmt.Errorf("invalid quarter in quarterly date %q: %w", s, err)
	}

	month := time.Month(quarter * 3)
	return macrolens.NewDate(year, month+1, 0), nil
}

// parseSeries reads the INSEE CSV format from an io.Reader.
//
// The first three lines carry the label, idBank and last-update metadata, the
// fourth the column headers, and the remaining lines one period each, most
// recent first. Periods with no published value yet have an empty value cell.
func parseSeries(r io.Reader) (*macrolens.Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(records) < 4 {
		return nil, fmt.Errorf("not enough records in csv to parse series")
	}

	series := &macrolens.Series{}
	for i := 4; i < len(records); i++ {
		if len(records[i]) > 1 && records[i][1] != "" {
			date, err := parseInseeDate(records[i][0])
			if err != nil {
				// Don't wrap, parseInseeDate provides good context
				return nil, err
			}
			val, err := strconv.ParseFloat(records[i][1], 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value %q for date %q: %w", records[i][1], records[i][0], err)
			}
			series.Append(date, val)
		}
	}
	return series, nil
}

var _ macrolens.MacroProvider = (*Provider)(nil)
