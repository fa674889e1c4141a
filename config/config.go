// Package config loads the mlens application configuration from environment
// variables or a .env file.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
//
// ENV equivalent:
//
//	EODHD_API_KEY=demo
//	MLENS_TICKER=DJI.INDX
//	MLENS_MACRO_SOURCE=fred
//	MLENS_MACRO_ID=CPIAUCSL
//	MLENS_QUOTE_INSTRUMENT=43000
type Config struct {
	EODHDAPIKey     string // EODHD API token; "demo" works for a few tickers
	Ticker          string // default equity index ticker
	MacroSource     string // "fred" or "insee"
	MacroID         string // series id within the macro source
	QuoteInstrument string // LS Exchange instrument id for the live quote
}

// Load reads the configuration.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("EODHD_API_KEY", "demo")
	v.SetDefault("MLENS_TICKER", "DJI.INDX")
	v.SetDefault("MLENS_MACRO_SOURCE", "fred")
	v.SetDefault("MLENS_MACRO_ID", "CPIAUCSL")
	v.SetDefault("MLENS_QUOTE_INSTRUMENT", "43000")

	// Optionally read from .env if present (common in local dev).
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine, a malformed one is not.
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	return Config{
		EODHDAPIKey:     v.GetString("EODHD_API_KEY"),
		Ticker:          v.GetString("MLENS_TICKER"),
		MacroSource:     v.GetString("MLENS_MACRO_SOURCE"),
		MacroID:         v.GetString("MLENS_MACRO_ID"),
		QuoteInstrument: v.GetString("MLENS_QUOTE_INSTRUMENT"),
	}, nil
}
