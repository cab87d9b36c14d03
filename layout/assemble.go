package layout

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// AssemblerConfig holds configuration for outline assembly
type AssemblerConfig struct {
	// MaxTitleRunes is the length at which a title candidate is truncated
	// Default: 100 (truncated to TruncatedTitleRunes plus an ellipsis)
	MaxTitleRunes int

	// TruncatedTitleRunes is the length of a truncated title
	// Default: 50
	TruncatedTitleRunes int
}

// DefaultAssemblerConfig returns sensible default configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		MaxTitleRunes:       100,
		TruncatedTitleRunes: 50,
	}
}

// Assembler orders classified headings and packages them with the title
// into the final outline.
type Assembler struct {
	config AssemblerConfig
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{
		config: DefaultAssemblerConfig(),
	}
}

// NewAssemblerWithConfig creates an assembler with custom configuration
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	return &Assembler{
		config: config,
	}
}

// Assemble sorts headings by (page ascending, vertical position from the
// top of the page) and returns the outline. The sort is stable, so
// original document order is preserved under ties. A nil title yields an
// empty title string.
func (a *Assembler) Assemble(title *Candidate, headings []Classified) *model.Outline {
	outline := model.NewOutline()

	if title != nil {
		outline.Title = a.truncateTitle(title.Block.Text)
	}

	for _, h := range headings {
		outline.Headings = append(outline.Headings, model.Heading{
			Level: h.Level,
			Text:  h.Block.Text,
			Page:  h.Block.Page,
			Y:     h.Block.BBox.Top(),
		})
	}

	sort.SliceStable(outline.Headings, func(i, j int) bool {
		a, b := outline.Headings[i], outline.Headings[j]
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		// Higher Y is closer to the page top in PDF coordinates
		return a.Y > b.Y
	})

	return outline
}

// truncateTitle cuts overly long title candidates, which are usually
// consolidation artifacts rather than real titles
func (a *Assembler) truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= a.config.MaxTitleRunes {
		return title
	}
	return string(runes[:a.config.TruncatedTitleRunes]) + "..."
}
