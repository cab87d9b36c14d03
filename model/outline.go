package model

// Level represents the hierarchical level of a heading
type Level int

const (
	LevelUnknown Level = iota
	LevelTitle         // Document title (no numeric level)
	LevelH1            // Major section
	LevelH2            // Subsection
	LevelH3            // Sub-subsection
)

// String returns a string representation of the level
func (l Level) String() string {
	switch l {
	case LevelTitle:
		return "title"
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// "H1"/"H2"/"H3" in JSON output
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Heading is a final outline entry: a classified heading tied to a page.
// The Y coordinate is retained for ordering but not serialized.
type Heading struct {
	// Level is the heading level (H1, H2, or H3)
	Level Level `json:"level"`

	// Text is the normalized heading text
	Text string `json:"text"`

	// Page is the zero-based page index the heading appears on
	Page int `json:"page"`

	// Y is the top edge of the heading on its page, used for ordering
	Y float64 `json:"-"`
}

// Outline is the structured result of extraction: a title plus headings
// sorted by (page ascending, vertical position descending in PDF
// coordinates, i.e. top of page first).
type Outline struct {
	// Title is the document title, or the fallback if none was detected
	Title string `json:"title"`

	// Headings are the detected headings in reading order
	Headings []Heading `json:"outline"`
}

// NewOutline creates an empty outline. Headings is non-nil so an empty
// outline serializes as [] rather than null.
func NewOutline() *Outline {
	return &Outline{Headings: []Heading{}}
}

// HeadingCount returns the number of headings in the outline
func (o *Outline) HeadingCount() int {
	if o == nil {
		return 0
	}
	return len(o.Headings)
}

// HeadingsAtLevel returns all headings at a specific level
func (o *Outline) HeadingsAtLevel(level Level) []Heading {
	if o == nil {
		return nil
	}

	var result []Heading
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}
