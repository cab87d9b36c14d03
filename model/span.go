package model

import "strings"

// Span represents a run of text sharing one font and style, as reported by
// the page decoder. Spans are immutable inputs to layout analysis.
type Span struct {
	// Text is the text content of the span
	Text string

	// BBox is the bounding box of the span
	BBox BBox

	// FontName is the name of the font as reported by the decoder
	// (e.g., "Helvetica-Bold")
	FontName string

	// FontSize is the font size in points
	FontSize float64

	// Bold indicates a bold font face
	Bold bool

	// Italic indicates an italic or oblique font face
	Italic bool

	// Page is the zero-based page index the span appears on
	Page int
}

// NewSpan creates a span and derives the bold/italic flags from the font name
func NewSpan(text string, bbox BBox, fontName string, fontSize float64, page int) Span {
	return Span{
		Text:     text,
		BBox:     bbox,
		FontName: fontName,
		FontSize: fontSize,
		Bold:     IsBoldFont(fontName),
		Italic:   IsItalicFont(fontName),
		Page:     page,
	}
}

// FontFamily returns the font name stripped of a subset prefix
// (e.g., "ABCDEF+Helvetica-Bold" becomes "Helvetica-Bold")
func (s Span) FontFamily() string {
	name := s.FontName
	if idx := strings.IndexByte(name, '+'); idx == 6 {
		name = name[idx+1:]
	}
	return name
}

// IsEmpty returns true if the span has no non-whitespace text
func (s Span) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// IsBoldFont reports whether a font name indicates a bold face
func IsBoldFont(fontName string) bool {
	lower := strings.ToLower(fontName)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold")
}

// IsItalicFont reports whether a font name indicates an italic face
func IsItalicFont(fontName string) bool {
	lower := strings.ToLower(fontName)
	return strings.Contains(lower, "italic") ||
		strings.Contains(lower, "oblique")
}
