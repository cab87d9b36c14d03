package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/model"
)

// Line represents a single semantic line of text: spans sharing a baseline
// and font identity, merged left to right.
type Line struct {
	// Spans are the spans that make up this line (sorted left to right)
	Spans []model.Span

	// Text is the assembled text content of the line
	Text string

	// BBox is the union of the span bounding boxes
	BBox model.BBox

	// FontSize is the dominant span font size, weighted by character count
	FontSize float64

	// FontName is the dominant font family
	FontName string

	// Bold indicates the dominant face is bold
	Bold bool

	// Italic indicates the dominant face is italic
	Italic bool

	// Page is the zero-based page index
	Page int
}

// LineConfig holds configuration for line consolidation
type LineConfig struct {
	// CenterDistanceRatio is the maximum vertical center distance for two
	// spans to share a line, as a fraction of the larger span height
	// Default: 0.5
	CenterDistanceRatio float64

	// FontSizeTolerance is the maximum font size difference (in points)
	// for spans to share a line
	// Default: 0.5
	FontSizeTolerance float64

	// RequireWeightMatch requires bold flags to match within a line
	// Default: true
	RequireWeightMatch bool
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		CenterDistanceRatio: 0.5,
		FontSizeTolerance:   0.5,
		RequireWeightMatch:  true,
	}
}

// LineDetector consolidates spans into semantic lines
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Detect consolidates the spans of a single page into lines, sorted top to
// bottom. Every non-empty span belongs to exactly one line.
func (d *LineDetector) Detect(spans []model.Span) []Line {
	if len(spans) == 0 {
		return nil
	}

	// Sort by exact center Y descending (top of page first in PDF
	// coordinates), preserving stream order under ties. Tolerance-based
	// clustering is left to sameLine so the comparator stays a strict
	// weak ordering.
	sorted := make([]model.Span, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Center().Y > sorted[j].BBox.Center().Y
	})

	var groups [][]model.Span
	var current []model.Span

	for _, span := range sorted {
		if len(current) == 0 {
			current = append(current, span)
			continue
		}

		if d.sameLine(current, span) {
			current = append(current, span)
		} else {
			groups = append(groups, current)
			current = []model.Span{span}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].BBox.X < group[j].BBox.X
		})
		lines = append(lines, d.buildLine(group))
	}

	return lines
}

// sameLine reports whether a span belongs to the line under construction:
// vertical centers within tolerance, font size within tolerance, and
// matching weight when configured.
func (d *LineDetector) sameLine(line []model.Span, span model.Span) bool {
	centerY := 0.0
	maxHeight := 0.0
	for _, s := range line {
		centerY += s.BBox.Center().Y
		if s.BBox.Height > maxHeight {
			maxHeight = s.BBox.Height
		}
	}
	centerY /= float64(len(line))

	tol := maxFloat(maxHeight, span.BBox.Height) * d.config.CenterDistanceRatio
	if absFloat(span.BBox.Center().Y-centerY) > tol {
		return false
	}

	last := line[len(line)-1]
	if absFloat(span.FontSize-last.FontSize) > d.config.FontSizeTolerance {
		return false
	}
	if d.config.RequireWeightMatch && span.Bold != last.Bold {
		return false
	}

	return true
}

// buildLine assembles a Line from left-to-right sorted spans
func (d *LineDetector) buildLine(spans []model.Span) Line {
	line := Line{
		Spans: spans,
		Page:  spans[0].Page,
		BBox:  spans[0].BBox,
	}

	for _, s := range spans[1:] {
		line.BBox = line.BBox.Union(s.BBox)
	}

	line.Text = d.assembleText(spans)
	line.FontSize, line.FontName, line.Bold, line.Italic = dominantFont(spans)

	return line
}

// assembleText joins span texts, inserting a space where a visible
// horizontal gap separates adjacent spans
func (d *LineDetector) assembleText(spans []model.Span) string {
	var sb strings.Builder
	for i, span := range spans {
		if i > 0 {
			prev := spans[i-1]
			gap := span.BBox.X - prev.BBox.Right()
			if gap > span.BBox.Height*0.15 &&
				!strings.HasSuffix(prev.Text, " ") &&
				!strings.HasPrefix(span.Text, " ") {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// dominantFont returns the font attributes carrying the most characters
// across the given spans
func dominantFont(spans []model.Span) (size float64, name string, bold, italic bool) {
	type fontKey struct {
		size   float64
		family string
		bold   bool
		italic bool
	}

	counts := make(map[fontKey]int)
	order := make([]fontKey, 0, len(spans))

	for _, s := range spans {
		key := fontKey{
			size:   roundSize(s.FontSize),
			family: s.FontFamily(),
			bold:   s.Bold,
			italic: s.Italic,
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key] += len([]rune(s.Text))
	}

	best := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[best] {
			best = key
		}
	}

	return best.size, best.family, best.bold, best.italic
}

// roundSize buckets font sizes to 0.5pt precision to absorb decoder noise
func roundSize(size float64) float64 {
	return float64(int(size*2+0.5)) / 2
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
