package layout

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

// makeSpan creates a span for layout tests
func makeSpan(text string, x, y, w, fontSize float64, fontName string, page int) model.Span {
	return model.NewSpan(text, model.NewBBox(x, y, w, fontSize), fontName, fontSize, page)
}

func TestNewLineDetector(t *testing.T) {
	detector := NewLineDetector()
	if detector == nil {
		t.Fatal("NewLineDetector returned nil")
	}
}

func TestDefaultLineConfig(t *testing.T) {
	config := DefaultLineConfig()

	if config.CenterDistanceRatio != 0.5 {
		t.Errorf("Expected CenterDistanceRatio=0.5, got %f", config.CenterDistanceRatio)
	}
	if config.FontSizeTolerance != 0.5 {
		t.Errorf("Expected FontSizeTolerance=0.5, got %f", config.FontSizeTolerance)
	}
	if !config.RequireWeightMatch {
		t.Error("Expected RequireWeightMatch to default to true")
	}
}

func TestLineDetectEmpty(t *testing.T) {
	detector := NewLineDetector()
	if lines := detector.Detect(nil); lines != nil {
		t.Errorf("Expected nil for empty input, got %d lines", len(lines))
	}
}

func TestLineDetectMergesSameBaseline(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Hello", 100, 700, 50, 12, "Helvetica", 0),
		makeSpan("World", 156, 700, 50, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hello World" {
		t.Errorf("Expected %q, got %q", "Hello World", lines[0].Text)
	}
	if lines[0].FontSize != 12 {
		t.Errorf("Expected FontSize=12, got %f", lines[0].FontSize)
	}
}

func TestLineDetectNoSpaceForTightSpans(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Out", 100, 700, 30, 12, "Helvetica", 0),
		makeSpan("line", 130.5, 700, 30, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Outline" {
		t.Errorf("Expected %q, got %q", "Outline", lines[0].Text)
	}
}

func TestLineDetectSeparatesBaselines(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Second line", 100, 650, 80, 12, "Helvetica", 0),
		makeSpan("First line", 100, 700, 80, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	// Lines come back top to bottom
	if lines[0].Text != "First line" {
		t.Errorf("Expected top line first, got %q", lines[0].Text)
	}
	if lines[1].Text != "Second line" {
		t.Errorf("Expected bottom line second, got %q", lines[1].Text)
	}
}

func TestLineDetectSplitsOnWeight(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Bold lead", 100, 700, 60, 12, "Helvetica-Bold", 0),
		makeSpan("regular tail", 170, 700, 60, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("Expected weight mismatch to split spans, got %d lines", len(lines))
	}
}

func TestLineDetectSplitsOnFontSize(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Big", 100, 700, 40, 18, "Helvetica", 0),
		makeSpan("small", 150, 700, 40, 11, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("Expected size mismatch to split spans, got %d lines", len(lines))
	}
}

func TestLineDetectNearToleranceChain(t *testing.T) {
	detector := NewLineDetector()

	// Three spans whose centers step down by exactly the merge tolerance:
	// adjacent pairs are within it, the outer pair is not. Input order is
	// scrambled; output must still be strictly top to bottom.
	spans := []model.Span{
		makeSpan("low", 100, 682, 40, 12, "Helvetica", 0),
		makeSpan("high", 100, 694, 40, 12, "Helvetica", 0),
		makeSpan("mid", 160, 688, 40, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "high mid" {
		t.Errorf("Expected top line %q, got %q", "high mid", lines[0].Text)
	}
	if lines[1].Text != "low" {
		t.Errorf("Expected bottom line %q, got %q", "low", lines[1].Text)
	}
}

func TestLineDetectDropsEmptySpans(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("   ", 100, 700, 20, 12, "Helvetica", 0),
		makeSpan("Content", 130, 700, 60, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Content" {
		t.Errorf("Expected %q, got %q", "Content", lines[0].Text)
	}
}

func TestLineBBoxUnion(t *testing.T) {
	detector := NewLineDetector()
	spans := []model.Span{
		makeSpan("Left", 100, 700, 40, 12, "Helvetica", 0),
		makeSpan("Right", 150, 700, 50, 12, "Helvetica", 0),
	}

	lines := detector.Detect(spans)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}

	bbox := lines[0].BBox
	if bbox.X != 100 {
		t.Errorf("Expected left edge 100, got %f", bbox.X)
	}
	if bbox.Right() != 200 {
		t.Errorf("Expected right edge 200, got %f", bbox.Right())
	}
}

func TestDominantFont(t *testing.T) {
	spans := []model.Span{
		makeSpan("x", 100, 700, 10, 14, "Times-Bold", 0),
		makeSpan("a much longer run of text", 112, 700, 180, 12, "Helvetica", 0),
	}

	size, name, bold, _ := dominantFont(spans)
	if size != 12 {
		t.Errorf("Expected dominant size 12, got %f", size)
	}
	if name != "Helvetica" {
		t.Errorf("Expected dominant family Helvetica, got %q", name)
	}
	if bold {
		t.Error("Expected dominant face not to be bold")
	}
}

func TestRoundSize(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{12.0, 12.0},
		{12.2, 12.0},
		{12.3, 12.5},
		{12.74, 12.5},
		{12.75, 13.0},
	}

	for _, tt := range tests {
		if got := roundSize(tt.in); got != tt.expected {
			t.Errorf("roundSize(%f) = %f, want %f", tt.in, got, tt.expected)
		}
	}
}
