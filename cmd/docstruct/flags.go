package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct"
	"github.com/tsawler/docstruct/internal/config"
	"github.com/tsawler/docstruct/layout"
)

// flags are shared by every command. Values not given on the command line
// come from the environment, then from the defaults.
type flags struct {
	envFile  string
	logLevel string
	workers  int
	pages    []int

	columnGap      float64
	minColumnWidth float64
	headingRatio   float64
	minHeadingSize float64
}

func (f *flags) register(cmd *cobra.Command) {
	def := layout.DefaultConfig()
	pf := cmd.PersistentFlags()

	pf.StringVar(&f.envFile, "env-file", ".env", "file of KEY=VALUE defaults; ignored when missing")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	pf.IntVar(&f.workers, "workers", 0, "pages laid out concurrently (default: number of CPUs)")
	pf.IntSliceVar(&f.pages, "pages", nil, "comma-separated 1-indexed pages to analyze (default: all)")

	pf.Float64Var(&f.columnGap, "column-gap", def.ColumnGapThreshold, "minimum gap in points between column starts")
	pf.Float64Var(&f.minColumnWidth, "min-column-width", def.MinColumnWidth, "narrowest span in points kept as a column")
	pf.Float64Var(&f.headingRatio, "heading-ratio", def.HeadingSizeRatio, "font size ratio over body text for headings")
	pf.Float64Var(&f.minHeadingSize, "min-heading-size", def.MinHeadingSize, "smallest font size in points for size-based headings")
}

// analysis builds the Analysis for one input file.
func (f *flags) analysis(cmd *cobra.Command, path string) (*docstruct.Analysis, error) {
	if err := config.LoadEnvFile(f.envFile); err != nil {
		return nil, err
	}
	cfg := config.Load()

	set := cmd.Flags()
	if set.Changed("column-gap") {
		cfg.Layout.ColumnGapThreshold = f.columnGap
	}
	if set.Changed("min-column-width") {
		cfg.Layout.MinColumnWidth = f.minColumnWidth
	}
	if set.Changed("heading-ratio") {
		cfg.Layout.HeadingSizeRatio = f.headingRatio
	}
	if set.Changed("min-heading-size") {
		cfg.Layout.MinHeadingSize = f.minHeadingSize
	}
	if set.Changed("workers") {
		cfg.Workers = f.workers
	}
	if set.Changed("log-level") {
		lvl, err := config.ParseLevel(f.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))

	a, err := openInput(path)
	if err != nil {
		return nil, err
	}
	return a.Config(cfg.Layout).
		Workers(cfg.Workers).
		Logger(logger.With("file", filepath.Base(path))).
		Pages(f.pages...), nil
}

// openInput treats .json files as a list of pages and anything else as a PDF.
func openInput(path string) (*docstruct.Analysis, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return docstruct.Open(path), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var pages []layout.PageInput
	if err := json.NewDecoder(file).Decode(&pages); err != nil {
		return nil, fmt.Errorf("failed to decode pages from %s: %w", path, err)
	}
	return docstruct.FromPages(pages), nil
}
