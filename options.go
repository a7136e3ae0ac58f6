package docstruct

import (
	"log/slog"

	"github.com/tsawler/docstruct/layout"
)

// Options holds the configuration of an Analysis.
type Options struct {
	// Page selection (1-indexed); nil means all pages
	pages []int

	// Thresholds; normalized by the analyzer
	config layout.Config

	// Concurrency and logging; zero values mean the analyzer defaults
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default analysis options.
func defaultOptions() Options {
	return Options{
		config: layout.DefaultConfig(),
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := o
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	return newOpts
}

// analyzerOptions converts the options into layout.Analyzer options.
func (o Options) analyzerOptions() []layout.Option {
	var opts []layout.Option
	if o.logger != nil {
		opts = append(opts, layout.WithLogger(o.logger))
	}
	if o.workers > 0 {
		opts = append(opts, layout.WithWorkers(o.workers))
	}
	return opts
}
