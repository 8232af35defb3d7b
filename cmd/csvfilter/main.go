// Command csvfilter reads one or more delimited text files, optionally
// filters their rows against a boolean expression, optionally projects
// a subset of columns, and writes the surviving rows to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/plnu/csvfilter/internal/config"
	"github.com/plnu/csvfilter/internal/csvio"
	"github.com/plnu/csvfilter/internal/diagnostics"
	"github.com/plnu/csvfilter/internal/engine"
	"github.com/plnu/csvfilter/internal/headers"
	"github.com/plnu/csvfilter/internal/row"
	"github.com/plnu/csvfilter/internal/value"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", 0)

	if err := run(cfg, logger, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openFile is a header-validated input ready for sequential row
// processing: its CSV reader and the resolved headers table.
type openFile struct {
	path    string
	reader  *csvio.Reader
	closer  io.Closer
	headers *headers.Table
}

func run(cfg *config.Config, logger *log.Logger, stdout io.Writer) error {
	paths := cfg.Files
	if len(paths) == 0 {
		paths = []string{""} // "" means stdin
	}

	opened := make([]*openFile, len(paths))

	if len(paths) > 1 {
		// More than one file: open and header-validate concurrently,
		// hiding per-file open latency. Rows are still processed
		// sequentially per file, through a private Engine instance
		// each, so no Expression is ever evaluated from two goroutines
		// at once.
		var g errgroup.Group
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				of, err := openInput(path)
				if err != nil {
					return fmt.Errorf("%s: %w", displayName(path), err)
				}
				opened[i] = of
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		of, err := openInput(paths[0])
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(paths[0]), err)
		}
		opened[0] = of
	}

	for _, of := range opened {
		defer of.closer.Close()
	}

	if cfg.ShowHeaders {
		for _, of := range opened {
			printHeaders(stdout, of)
		}
		return nil
	}

	for _, of := range opened {
		if err := processFile(cfg, logger, stdout, of); err != nil {
			return fmt.Errorf("%s: %w", displayName(of.path), err)
		}
	}
	return nil
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func openInput(path string) (*openFile, error) {
	var r io.Reader
	var closer io.Closer = io.NopCloser(nil)

	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		r, closer = f, f
	}

	reader, err := csvio.NewReader(r)
	if err != nil {
		return nil, err
	}
	return &openFile{path: path, reader: reader, closer: closer, headers: headers.New(reader.Headers)}, nil
}

func printHeaders(w io.Writer, of *openFile) {
	for i, name := range of.reader.Headers {
		fmt.Fprintf(w, "%s\t%s\n", name, of.headers.Alias(i))
	}
}

// printParseError reports a filter expression's parse failure the way
// the original tool did: the message, the offending expression, and a
// marker line with '^' under the primary range and '~' under the
// secondary range.
func printParseError(logger *log.Logger, source string, err diagnostics.ParseError) {
	logger.Printf("Failed to parse filter expression: %s", err.Message)
	logger.Print(source)
	logger.Print(err.Underline())
}

func processFile(cfg *config.Config, logger *log.Logger, stdout io.Writer, of *openFile) error {
	columns, badName := of.headers.ResolveColumns(cfg.Columns)
	if badName != "" {
		return fmt.Errorf("No such column %q", badName)
	}
	if dupes := headers.Duplicates(cfg.Columns); len(dupes) > 0 {
		logger.Printf("[%s] %s: redundant -columns selection (repeated: %s)", cfg.ShortRunID(), displayName(of.path), strings.Join(dupes, ", "))
	}

	var expr *engine.Expression
	if cfg.Filter != "" {
		expr = engine.New(cfg.Filter, of.headers)
		if !expr.Ok() {
			printParseError(logger, cfg.Filter, expr.Error())
			return fmt.Errorf("invalid filter expression")
		}
	}

	delim := ','
	if cfg.OutputDelim != 0 {
		delim = cfg.OutputDelim
	}
	writer, err := csvio.NewWriter(stdout, delim, of.reader.Headers, columns)
	if err != nil {
		return err
	}

	var total, kept, warned int
	for {
		record, err := of.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		total++

		if expr != nil {
			r := row.New(record)
			v := expr.Evaluate(r)
			switch {
			case v.IsError():
				warned++
				if cfg.Verbose {
					logger.Printf("[%s] row %d: %s", cfg.ShortRunID(), total, v.ErrorMessage())
				}
				continue
			case v.Tag() != value.BOOLEAN:
				warned++
				if cfg.Verbose {
					logger.Printf("[%s] row %d: filter did not evaluate to a boolean (got %s: %s)", cfg.ShortRunID(), total, v.Tag(), v.Render())
				}
				continue
			case !v.AsBoolean():
				if cfg.Verbose {
					logger.Printf("[%s] row %d: filter evaluated to %s, dropping row", cfg.ShortRunID(), total, v.Render())
				}
				continue
			}
		}

		if err := writer.Write(record); err != nil {
			return err
		}
		kept++
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	if cfg.Verbose {
		logger.Printf("[%s] %s: kept %d/%d rows (%d dropped on row-level error)", cfg.ShortRunID(), displayName(of.path), kept, total, warned)
	}
	return nil
}
