package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env around

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.EODHDAPIKey)
	assert.Equal(t, "DJI.INDX", cfg.Ticker)
	assert.Equal(t, "fred", cfg.MacroSource)
	assert.Equal(t, "CPIAUCSL", cfg.MacroID)
	assert.Equal(t, "43000", cfg.QuoteInstrument)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MLENS_TICKER", "GSPC.INDX")
	t.Setenv("MLENS_MACRO_SOURCE", "insee")
	t.Setenv("MLENS_MACRO_ID", "001759970")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "GSPC.INDX", cfg.Ticker)
	assert.Equal(t, "insee", cfg.MacroSource)
	assert.Equal(t, "001759970", cfg.MacroID)
	assert.Equal(t, "demo", cfg.EODHDAPIKey, "untouched keys keep their default")
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	env := "EODHD_API_KEY=secret\nMLENS_TICKER=FCHI.INDX\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.EODHDAPIKey)
	assert.Equal(t, "FCHI.INDX", cfg.Ticker)
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MLENS_TICKER=FCHI.INDX\n"), 0600))
	t.Setenv("MLENS_TICKER", "GDAXI.INDX")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "GDAXI.INDX", cfg.Ticker)
}
