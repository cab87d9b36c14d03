package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// Block represents a consolidated, possibly multi-line, text unit treated
// as one heading candidate (e.g., a wrapped two-line heading).
type Block struct {
	// Lines are the lines merged into this block (top to bottom)
	Lines []Line

	// Text is the normalized text content: NFC-composed, interior
	// whitespace collapsed, leading/trailing whitespace stripped
	Text string

	// BBox is the union of the line bounding boxes
	BBox model.BBox

	// FontSize is the dominant font size across the block's lines
	FontSize float64

	// FontName is the dominant font family
	FontName string

	// Bold indicates the dominant face is bold
	Bold bool

	// Italic indicates the dominant face is italic
	Italic bool

	// Page is the zero-based page index
	Page int

	// PageWidth is the width of the page the block appears on
	PageWidth float64

	// Indentation is the distance from the left page edge
	Indentation float64

	// Centered indicates the block is horizontally centered on the page
	Centered bool

	// MixedSizes indicates the block's lines carry differing font sizes
	MixedSizes bool

	// SpacingBefore is the vertical gap above the block (to the previous
	// block, or to the page top for the first block)
	SpacingBefore float64

	// SpacingAfter is the vertical gap below the block (0 for the last)
	SpacingAfter float64

	// CharCount is the rune count of the normalized text
	CharCount int
}

// BlockConfig holds configuration for block consolidation
type BlockConfig struct {
	// VerticalGapRatio is the maximum gap between lines of one block, as a
	// fraction of the lower line's height
	// Default: 1.5
	VerticalGapRatio float64

	// AlignmentTolerance is the maximum left-edge difference (in points)
	// for lines to be considered aligned
	// Default: 10
	AlignmentTolerance float64

	// FontSizeTolerance is the maximum dominant-size difference (in points)
	// for lines to merge into one block
	// Default: 0.5
	FontSizeTolerance float64

	// CenterRatio is the maximum center offset for a block to count as
	// centered, as a fraction of page width
	// Default: 0.08
	CenterRatio float64

	// MaxCenteredWidthRatio is the maximum block width for centering to be
	// meaningful, as a fraction of page width
	// Default: 0.85
	MaxCenteredWidthRatio float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		VerticalGapRatio:      1.5,
		AlignmentTolerance:    10.0,
		FontSizeTolerance:     0.5,
		CenterRatio:           0.08,
		MaxCenteredWidthRatio: 0.85,
	}
}

// BlockDetector consolidates lines into blocks
type BlockDetector struct {
	config BlockConfig
}

// NewBlockDetector creates a new block detector with default configuration
func NewBlockDetector() *BlockDetector {
	return &BlockDetector{
		config: DefaultBlockConfig(),
	}
}

// NewBlockDetectorWithConfig creates a block detector with custom configuration
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	return &BlockDetector{
		config: config,
	}
}

// Detect merges the lines of a single page into blocks, top to bottom.
// Adjacent lines merge when the vertical gap is small relative to line
// height, horizontal alignment is consistent (same left edge or both
// centered), and font identity is unchanged. Blocks whose normalized text
// is empty are dropped.
func (d *BlockDetector) Detect(lines []Line, pageWidth, pageHeight float64) []Block {
	if len(lines) == 0 {
		return nil
	}

	var groups [][]Line
	var current []Line

	for _, line := range lines {
		if len(current) == 0 {
			current = append(current, line)
			continue
		}

		if d.sameBlock(current[len(current)-1], line, pageWidth) {
			current = append(current, line)
		} else {
			groups = append(groups, current)
			current = []Line{line}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	blocks := make([]Block, 0, len(groups))
	for _, group := range groups {
		block := d.buildBlock(group, pageWidth)
		if block.Text == "" {
			continue
		}
		blocks = append(blocks, block)
	}

	d.calculateSpacing(blocks, pageHeight)

	return blocks
}

// sameBlock reports whether a line continues the block ended by prev
func (d *BlockDetector) sameBlock(prev, line Line, pageWidth float64) bool {
	// Vertical gap from the bottom of the previous line to the top of this
	// one; negative gaps (overlap) also merge
	gap := prev.BBox.Bottom() - line.BBox.Top()
	if gap > line.BBox.Height*d.config.VerticalGapRatio {
		return false
	}

	// Font identity must be unchanged
	if absFloat(prev.FontSize-line.FontSize) > d.config.FontSizeTolerance {
		return false
	}
	if prev.FontName != line.FontName || prev.Bold != line.Bold {
		return false
	}

	// Alignment: same left edge, or both centered
	if absFloat(prev.BBox.X-line.BBox.X) <= d.config.AlignmentTolerance {
		return true
	}
	return d.isCentered(prev.BBox, pageWidth) && d.isCentered(line.BBox, pageWidth)
}

// isCentered reports whether a bounding box is horizontally centered
func (d *BlockDetector) isCentered(bbox model.BBox, pageWidth float64) bool {
	if pageWidth <= 0 {
		return false
	}
	if bbox.Width > pageWidth*d.config.MaxCenteredWidthRatio {
		return false
	}
	offset := absFloat(bbox.Center().X - pageWidth/2)
	return offset <= pageWidth*d.config.CenterRatio
}

// buildBlock assembles a Block from its lines
func (d *BlockDetector) buildBlock(lines []Line, pageWidth float64) Block {
	block := Block{
		Lines:     lines,
		Page:      lines[0].Page,
		PageWidth: pageWidth,
		BBox:      lines[0].BBox,
	}

	var parts []string
	for i, line := range lines {
		if i > 0 {
			block.BBox = block.BBox.Union(line.BBox)
		}
		parts = append(parts, line.Text)
	}

	block.Text = NormalizeText(strings.Join(parts, " "))
	block.CharCount = len([]rune(block.Text))
	block.Indentation = block.BBox.X
	block.Centered = d.isCentered(block.BBox, pageWidth)

	block.FontSize = lines[0].FontSize
	block.FontName = lines[0].FontName
	block.Bold = lines[0].Bold
	block.Italic = lines[0].Italic
	for _, line := range lines[1:] {
		if roundSize(line.FontSize) != roundSize(block.FontSize) {
			block.MixedSizes = true
		}
	}

	return block
}

// calculateSpacing fills in vertical gaps between consecutive blocks. The
// first block on a page measures its gap from the page top.
func (d *BlockDetector) calculateSpacing(blocks []Block, pageHeight float64) {
	for i := range blocks {
		if i == 0 {
			blocks[i].SpacingBefore = pageHeight - blocks[i].BBox.Top()
			continue
		}
		gap := blocks[i-1].BBox.Bottom() - blocks[i].BBox.Top()
		if gap < 0 {
			gap = 0
		}
		blocks[i].SpacingBefore = gap
		blocks[i-1].SpacingAfter = gap
	}
}

// NormalizeText applies canonical composition (NFC), collapses interior
// whitespace runs to single spaces, and strips leading/trailing whitespace.
func NormalizeText(text string) string {
	composed := norm.NFC.String(text)
	return strings.Join(strings.Fields(composed), " ")
}
