package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

func TestParseFlags_Overrides(t *testing.T) {
	base := config.Config{Rows: 20, Columns: 40, Density: 0.3, Mode: config.ModeReference}
	cfg := parseFlags(base, []string{"-rows", "5", "-mode", "canonical", "-tui"})

	require.Equal(t, 5, cfg.Rows)
	require.Equal(t, 40, cfg.Columns, "unset flag keeps configured value")
	require.Equal(t, config.ModeCanonical, cfg.Mode)
	require.True(t, cfg.TUI)
}

func TestRun_ExitCodes(t *testing.T) {
	open := config.Config{Rows: 4, Columns: 6, Density: 0, Seed: 1, Mode: config.ModeCanonical}
	require.Equal(t, 0, run(open))

	// Density 1 blocks everything except the two forced-open corners.
	walled := config.Config{Rows: 3, Columns: 3, Density: 1, Seed: 1, Mode: config.ModeReference}
	require.Equal(t, 2, run(walled))

	single := config.Config{Rows: 1, Columns: 1, Density: 0, Seed: 1, Mode: config.ModeReference}
	require.Equal(t, 0, run(single))
}
