package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("csvfilter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestParse_Defaults tests that an empty argument list yields the
// documented defaults: no files (stdin), every column, comma output.
func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Files)
	assert.Empty(t, cfg.Columns)
	assert.Equal(t, ',', cfg.OutputDelim)
	assert.NotEmpty(t, cfg.RunID)
}

// TestParse_RepeatableFile tests that passing -file more than once
// accumulates every value, in order.
func TestParse_RepeatableFile(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-file", "a.csv", "-file", "b.csv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.csv", "b.csv"}, cfg.Files)
}

// TestParse_ColumnsSplit tests that -columns splits on commas.
func TestParse_ColumnsSplit(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-columns", "name,age,country"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age", "country"}, cfg.Columns)
}

// TestParse_FilterAndFlags tests that the filter expression and
// boolean flags are captured.
func TestParse_FilterAndFlags(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-filter", "age >= 21", "-verbose", "-show-headers"})
	require.NoError(t, err)
	assert.Equal(t, "age >= 21", cfg.Filter)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.ShowHeaders)
}

// TestParse_OutputDelimiter tests a valid single-character override.
func TestParse_OutputDelimiter(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-output-delimiter", ";"})
	require.NoError(t, err)
	assert.Equal(t, ';', cfg.OutputDelim)
}

// TestParse_OutputDelimiterRejectsMultiChar tests that a
// multi-character delimiter is rejected with a descriptive error.
func TestParse_OutputDelimiterRejectsMultiChar(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-output-delimiter", "::"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

// TestParse_UnknownFlag tests that flag.Parse's own error surfaces
// unmodified.
func TestParse_UnknownFlag(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
}

// TestShortRunID tests the 8-character log-correlation prefix.
func TestShortRunID(t *testing.T) {
	cfg := &Config{RunID: "abcdefgh12345"}
	assert.Equal(t, "abcdefgh", cfg.ShortRunID())

	short := &Config{RunID: "ab"}
	assert.Equal(t, "ab", short.ShortRunID())
}
