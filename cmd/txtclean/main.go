// txtclean strips the metadata header from instrument export files and
// keeps only the data table.
//
// Usage:
//
//	txtclean export.txt > clean.txt
//	txtclean -sep semicolon -decimal-dot -o clean.csv export.txt
//	txtclean -w -marker "[step]" export.txt     # writes export_clean.txt
//	cat export.txt | txtclean -format table
//
// A summary and a preview of the first rows go to stderr; stdout carries
// only the cleaned table.
//
// Exit codes:
//
//	0  table extracted
//	1  no table found, or a table without valid rows
//	2  usage, configuration or I/O error
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/txtclean"
	"github.com/bjaus/txtclean/internal/config"
	"github.com/bjaus/txtclean/internal/console"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	marker     string
	skip       int
	sep        string
	noHeader   bool
	decimalDot bool
	format     string
	border     string
	preview    int
	output     string
	writeNext  bool
	drift      bool
	noColor    bool
	quiet      bool
	debug      bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("txtclean", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f flags
	fs.StringVar(&f.configPath, "config", "", "Config file (default: "+config.FileName+" or user config dir)")
	fs.StringVar(&f.marker, "marker", txtclean.DefaultMarker, "Marker line before the table; empty disables")
	fs.IntVar(&f.skip, "skip", 0, "Ignore the first N lines")
	fs.StringVar(&f.sep, "sep", config.DefaultSeparator, "Output separator: "+strings.Join(txtclean.Separators(), ", "))
	fs.BoolVar(&f.noHeader, "no-header", false, "Omit the column names line")
	fs.BoolVar(&f.decimalDot, "decimal-dot", false, "Replace decimal commas with dots")
	fs.StringVar(&f.format, "format", config.DefaultFormat, "Output format: "+formatNames())
	fs.StringVar(&f.border, "border", "rounded", "Border of the table format and preview: rounded, ascii, none")
	fs.IntVar(&f.preview, "preview", config.DefaultPreviewRows, "Rows shown in the stderr preview; 0 disables")
	fs.StringVar(&f.output, "o", "", "Output file (default stdout)")
	fs.BoolVar(&f.writeNext, "w", false, "Write <input>_clean.txt next to the input file")
	fs.BoolVar(&f.drift, "drift", false, "Stop reading rows when the column count drifts")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.quiet, "q", false, "Suppress summary and preview")
	fs.BoolVar(&f.debug, "debug", false, "Print debug information")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "txtclean: expected at most one input file, got %d\n", fs.NArg())
		return 2
	}
	inputPath := fs.Arg(0)

	cfg, cfgPath, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "txtclean: %v\n", err)
		return 2
	}
	config.ApplyEnv(cfg, os.Getenv)
	applyFlags(cfg, fs, f)

	rep := console.New(stderr, !cfg.NoColor, cfg.Debug, f.quiet)
	if cfgPath != "" {
		rep.Debugf("config loaded from %s", cfgPath)
	}
	if err := cfg.Validate(); err != nil {
		rep.Error("%v", err)
		return 2
	}
	if f.writeNext && inputPath == "" {
		rep.Error("-w needs an input file")
		return 2
	}
	if f.writeNext && f.output != "" {
		rep.Error("-w and -o are mutually exclusive")
		return 2
	}

	data, err := readInput(inputPath, stdin)
	if err != nil {
		rep.Error("reading input: %v", err)
		return 2
	}

	res, err := txtclean.Extract(data, cfg.Options())
	if res != nil {
		rep.Debugf("%d lines, offset %d, location %+v", res.Lines, res.Offset, res.Location.Absolute(res.Offset))
		if res.Fallback {
			rep.Warn("input is not valid UTF-8; decoded as Latin-1")
		}
	}
	switch {
	case errors.Is(err, txtclean.ErrNotFound):
		rep.Error("could not find where the table starts")
		rep.Hint("set the marker that precedes the table (-marker) or skip lines manually (-skip N)")
		return 1
	case errors.Is(err, txtclean.ErrEmptyTable):
		rep.Warn("table detected, but it has no valid data rows")
		rep.Hint("adjust the marker (-marker) or the number of skipped lines (-skip N)")
		return 1
	case err != nil:
		rep.Error("%v", err)
		return 2
	}

	sum := res.Table.Summary()
	shown := sum.Rows
	if cfg.PreviewRows > 0 && shown > cfg.PreviewRows {
		shown = cfg.PreviewRows
	}
	rep.Success("table detected: %d columns, %d rows (from line %d)", sum.Columns, sum.Rows, res.Location.Data+res.Offset+1)
	if cfg.PreviewRows > 0 {
		preview, err := txtclean.Marshal(txtclean.Pretty, res.Table, txtclean.RenderOptions{
			IncludeHeader: true,
			MaxRows:       cfg.PreviewRows,
			Border:        cfg.RenderOptions().Border,
		})
		if err == nil {
			rep.Block(fmt.Sprintf("Preview (%d of %d rows)", shown, sum.Rows), string(preview))
		}
	}

	dest := f.output
	if f.writeNext {
		dest = cleanName(inputPath)
	}
	if err := writeOutput(dest, stdout, cfg, res.Table); err != nil {
		rep.Error("writing output: %v", err)
		return 2
	}
	if dest != "" && dest != "-" {
		rep.Success("wrote %s", dest)
	}
	return 0
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, f flags) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "marker":
			cfg.Heuristics.Marker = f.marker
		case "skip":
			cfg.Skip = f.skip
		case "sep":
			cfg.Separator = f.sep
		case "no-header":
			cfg.IncludeHeader = !f.noHeader
		case "decimal-dot":
			cfg.DecimalCommaToDot = f.decimalDot
		case "format":
			cfg.Format = f.format
		case "border":
			cfg.Border = f.border
		case "preview":
			cfg.PreviewRows = f.preview
		case "drift":
			cfg.Heuristics.StopOnWidthDrift = f.drift
		case "no-color":
			cfg.NoColor = f.noColor
		case "debug":
			cfg.Debug = f.debug
		}
	})
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(dest string, stdout io.Writer, cfg *config.Config, t *txtclean.Table) error {
	if dest == "" || dest == "-" {
		return txtclean.Write(stdout, cfg.OutputFormat(), t, cfg.RenderOptions())
	}
	out, err := txtclean.Marshal(cfg.OutputFormat(), t, cfg.RenderOptions())
	if err != nil {
		return err
	}
	return os.WriteFile(dest, out, 0o644)
}

// cleanName returns "<dir>/<base>_clean.txt" for input path p.
func cleanName(p string) string {
	base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return filepath.Join(filepath.Dir(p), base+"_clean.txt")
}

func formatNames() string {
	names := make([]string, 0, len(txtclean.Formats()))
	for _, f := range txtclean.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
