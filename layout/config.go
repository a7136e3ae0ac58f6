package layout

import "math"

// Default thresholds, in page points unless noted.
const (
	DefaultColumnGapThreshold = 30.0
	DefaultMinColumnWidth     = 100.0
	DefaultHeadingSizeRatio   = 1.2
	DefaultMinHeadingSize     = 12.0

	// DefaultBodyFontSize is the baseline assumed when a document has too
	// little text to measure one.
	DefaultBodyFontSize = 12.0
)

// Ratio bands for heading levels. A classified heading at or above
// h1Ratio is H1, at or above h2Ratio is H2, otherwise H3.
const (
	h1Ratio = 1.5
	h2Ratio = 1.3

	// boldHeadingRatio is the minimum size ratio for a bold fragment to be
	// classified as a heading regardless of MinHeadingSize.
	boldHeadingRatio = 1.0

	// minBaselineFragments is the number of valid fragments needed before
	// the measured baseline is trusted.
	minBaselineFragments = 3

	// ratioEpsilon absorbs floating-point noise at band edges, so 18/12
	// lands in the H1 band.
	ratioEpsilon = 1e-9
)

// Config holds the analysis thresholds. It is a plain value passed into each
// analysis call; analyzers never store a mutable copy.
type Config struct {
	// ColumnGapThreshold is the minimum horizontal distance between
	// fragment left edges for them to start separate columns.
	// Default: 30 points
	ColumnGapThreshold float64 `json:"column_gap_threshold"`

	// MinColumnWidth is the narrowest span that survives as its own column.
	// Default: 100 points
	MinColumnWidth float64 `json:"min_column_width"`

	// HeadingSizeRatio is the font size to body size ratio at which a
	// fragment becomes a heading.
	// Default: 1.2
	HeadingSizeRatio float64 `json:"heading_size_ratio"`

	// MinHeadingSize is the smallest font size classified as a heading by
	// size alone.
	// Default: 12 points
	MinHeadingSize float64 `json:"min_heading_size"`
}

// DefaultConfig returns the default thresholds
func DefaultConfig() Config {
	return Config{
		ColumnGapThreshold: DefaultColumnGapThreshold,
		MinColumnWidth:     DefaultMinColumnWidth,
		HeadingSizeRatio:   DefaultHeadingSizeRatio,
		MinHeadingSize:     DefaultMinHeadingSize,
	}
}

// Normalized returns a copy of c with every zero, negative or non-finite
// threshold replaced by its default.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	c.ColumnGapThreshold = positiveOr(c.ColumnGapThreshold, d.ColumnGapThreshold)
	c.MinColumnWidth = positiveOr(c.MinColumnWidth, d.MinColumnWidth)
	c.HeadingSizeRatio = positiveOr(c.HeadingSizeRatio, d.HeadingSizeRatio)
	c.MinHeadingSize = positiveOr(c.MinHeadingSize, d.MinHeadingSize)
	return c
}

func positiveOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
