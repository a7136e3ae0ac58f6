package layout

import (
	"sort"

	"github.com/tsawler/docstruct/model"
	"github.com/tsawler/docstruct/text"
)

// HeadingClassifier flags fragments as headings from their font size
// relative to the document's body text and their weight.
type HeadingClassifier struct {
	sizeRatio float64
	minSize   float64
}

// NewHeadingClassifier creates a heading classifier with default thresholds
func NewHeadingClassifier() *HeadingClassifier {
	return NewHeadingClassifierWithConfig(DefaultConfig())
}

// NewHeadingClassifierWithConfig creates a heading classifier using the
// heading thresholds of cfg.
func NewHeadingClassifierWithConfig(cfg Config) *HeadingClassifier {
	cfg = cfg.Normalized()
	return &HeadingClassifier{
		sizeRatio: cfg.HeadingSizeRatio,
		minSize:   cfg.MinHeadingSize,
	}
}

type sizeWeight struct {
	size  float64
	chars int
}

// BodyBaseline returns the character-weighted median font size across all
// valid fragments: the smallest size at or below which at least half of the
// document's characters are set. With fewer than three valid fragments, or
// no characters at all, it returns DefaultBodyFontSize and false.
func BodyBaseline(fragments []text.TextFragment) (float64, bool) {
	var samples []sizeWeight
	total := 0
	for i := range fragments {
		f := &fragments[i]
		if f.Validate() != nil {
			continue
		}
		n := f.CharCount()
		samples = append(samples, sizeWeight{size: f.FontSize, chars: n})
		total += n
	}
	if len(samples) < minBaselineFragments || total == 0 {
		return DefaultBodyFontSize, false
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].size < samples[j].size
	})

	cum := 0
	for _, s := range samples {
		cum += s.chars
		if 2*cum >= total {
			return s.size, true
		}
	}
	return samples[len(samples)-1].size, true
}

// Level returns the heading level of one fragment against the body
// baseline. Invalid fragments and fragments without visible text are body
// text.
func (c *HeadingClassifier) Level(f *text.TextFragment, baseline float64) model.HeadingLevel {
	if f.Validate() != nil || f.CharCount() == 0 || !isFinite(baseline) || baseline <= 0 {
		return model.HeadingBody
	}

	ratio := f.FontSize / baseline
	bySize := ratio+ratioEpsilon >= c.sizeRatio && f.FontSize+ratioEpsilon >= c.minSize
	byWeight := f.IsBold() && ratio+ratioEpsilon >= boldHeadingRatio
	if !bySize && !byWeight {
		return model.HeadingBody
	}

	switch {
	case ratio+ratioEpsilon >= h1Ratio:
		return model.HeadingH1
	case ratio+ratioEpsilon >= h2Ratio:
		return model.HeadingH2
	default:
		return model.HeadingH3
	}
}

// Classify sets IsHeading and HeadingLevel on every fragment and returns
// the number of headings found.
func (c *HeadingClassifier) Classify(fragments []text.TextFragment, baseline float64) int {
	count := 0
	for i := range fragments {
		level := c.Level(&fragments[i], baseline)
		fragments[i].HeadingLevel = level
		fragments[i].IsHeading = level.IsHeading()
		if fragments[i].IsHeading {
			count++
		}
	}
	return count
}
