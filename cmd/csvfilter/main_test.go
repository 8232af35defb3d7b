package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plnu/csvfilter/internal/config"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func silentLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

// capturingLogger returns a logger whose output lands in a buffer a
// test can inspect afterward.
func capturingLogger() (*log.Logger, *strings.Builder) {
	var buf strings.Builder
	return log.New(&buf, "", 0), &buf
}

// TestRun_FilterAndProject tests the end-to-end path: read a file,
// drop rows the filter rejects, and project to the requested columns.
func TestRun_FilterAndProject(t *testing.T) {
	path := writeTempCSV(t, "name,age\nAlice,30\nBob,17\nCarol,41\n")

	var out strings.Builder
	cfg := &config.Config{
		Files:   []string{path},
		Filter:  "age >= 18",
		Columns: []string{"name"},
	}
	err := run(cfg, silentLogger(), &out)
	require.NoError(t, err)
	assert.Equal(t, "name\nAlice\nCarol\n", out.String())
}

// TestRun_NoFilterKeepsEveryRow tests that an empty filter expression
// admits every row unchanged.
func TestRun_NoFilterKeepsEveryRow(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n3,4\n")

	var out strings.Builder
	cfg := &config.Config{Files: []string{path}}
	err := run(cfg, silentLogger(), &out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,4\n", out.String())
}

// TestRun_RowLevelErrorIsDropped tests that a row whose filter raises
// a runtime type error is dropped rather than aborting the whole run.
func TestRun_RowLevelErrorIsDropped(t *testing.T) {
	path := writeTempCSV(t, "a\n20\nabc\n30\n")

	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Filter: "a + 10 > 25"}
	err := run(cfg, silentLogger(), &out)
	require.NoError(t, err)
	assert.Equal(t, "a\n20\n30\n", out.String())
}

// TestRun_UnknownColumnFails tests that requesting a nonexistent
// output column surfaces as an error.
func TestRun_UnknownColumnFails(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n")

	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Columns: []string{"nope"}}
	err := run(cfg, silentLogger(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

// TestRun_MultipleFiles tests that every input file is opened
// (concurrently, per the multi-file path) and processed in order.
func TestRun_MultipleFiles(t *testing.T) {
	first := writeTempCSV(t, "a\n1\n")
	second := writeTempCSV(t, "a\n2\n")

	var out strings.Builder
	cfg := &config.Config{Files: []string{first, second}}
	err := run(cfg, silentLogger(), &out)
	require.NoError(t, err)
	assert.Equal(t, "a\n1\na\n2\n", out.String())
}

// TestRun_ShowHeaders tests that -show-headers prints original/alias
// pairs instead of filtering data.
func TestRun_ShowHeaders(t *testing.T) {
	path := writeTempCSV(t, "Full Name,age\nAlice,30\n")

	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, ShowHeaders: true}
	err := run(cfg, silentLogger(), &out)
	require.NoError(t, err)
	assert.Equal(t, "Full Name\tFull_Name\nage\tage\n", out.String())
}

// TestRun_InvalidFilterPrintsCaretDiagnostic tests that a filter which
// fails type resolution is reported with the message, the offending
// expression, and a caret/tilde marker line, matching the original
// CLI's diagnostic rendering.
func TestRun_InvalidFilterPrintsCaretDiagnostic(t *testing.T) {
	path := writeTempCSV(t, "a\n1\n")

	logger, logs := capturingLogger()
	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Filter: `"a" + 1`}
	err := run(cfg, logger, &out)
	require.Error(t, err)

	assert.Contains(t, logs.String(), "Failed to parse filter expression:")
	assert.Contains(t, logs.String(), `"a" + 1`)
	assert.Contains(t, logs.String(), "~~~~^~~")
}

// TestProcessFile_DuplicateColumnsWarns tests that a redundant
// -columns selection is flagged before the filter runs.
func TestProcessFile_DuplicateColumnsWarns(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1,2\n")

	logger, logs := capturingLogger()
	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Columns: []string{"a", "b", "a"}}
	err := run(cfg, logger, &out)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "redundant -columns selection")
	assert.Contains(t, logs.String(), "a")
}

// TestRun_VerboseLogsRenderedValue tests that verbose mode renders the
// evaluated predicate's value for a rejected row.
func TestRun_VerboseLogsRenderedValue(t *testing.T) {
	path := writeTempCSV(t, "a\n1\n")

	logger, logs := capturingLogger()
	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Filter: "a > 5", Verbose: true}
	err := run(cfg, logger, &out)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "filter evaluated to false, dropping row")
}

// TestRun_VerboseLogsNonBooleanRender tests the non-boolean branch's
// rendered value.
func TestRun_VerboseLogsNonBooleanRender(t *testing.T) {
	path := writeTempCSV(t, "a\n5\n")

	logger, logs := capturingLogger()
	var out strings.Builder
	cfg := &config.Config{Files: []string{path}, Filter: "a + 1", Verbose: true}
	err := run(cfg, logger, &out)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "filter did not evaluate to a boolean (got number: 6)")
}
