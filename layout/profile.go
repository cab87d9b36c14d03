package layout

import (
	"fmt"
	"sort"
)

// DocumentProfile holds document-wide statistics computed once per document
// and threaded explicitly into the scorer and classifier. It is immutable
// after construction.
type DocumentProfile struct {
	// P75, P90, P95 are font-size percentiles over all blocks, weighted by
	// character count so body text dominates the distribution. P75
	// approximates the body text size; P90 and P95 are the upper tier
	// boundaries.
	P75 float64
	P90 float64
	P95 float64

	// PageCount is the number of pages the profile was built from
	PageCount int

	familyShare map[string]float64
	repeated    map[string]struct{}

	// repeatYTolerance is retained so repeat lookups bucket Y the same way
	// construction did
	repeatYTolerance float64
}

// ProfileConfig holds configuration for document profile construction
type ProfileConfig struct {
	// RepeatMinPages is the minimum number of pages a text must repeat on
	// (at the same vertical position) to count as a running header/footer
	// Default: 3
	RepeatMinPages int

	// RepeatYTolerance is the Y bucket size (in points) for "same vertical
	// position" when detecting repeats
	// Default: 5
	RepeatYTolerance float64
}

// DefaultProfileConfig returns sensible default configuration
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{
		RepeatMinPages:   3,
		RepeatYTolerance: 5.0,
	}
}

// BuildProfile computes the document profile from the consolidated blocks
// of every page. This is the single place per-document statistics are
// computed; later stages receive the result rather than rescanning.
func BuildProfile(pages [][]Block) *DocumentProfile {
	return BuildProfileWithConfig(pages, DefaultProfileConfig())
}

// BuildProfileWithConfig computes the document profile with custom configuration
func BuildProfileWithConfig(pages [][]Block, config ProfileConfig) *DocumentProfile {
	profile := &DocumentProfile{
		PageCount:   len(pages),
		familyShare: make(map[string]float64),
		repeated:    make(map[string]struct{}),
	}

	type weighted struct {
		size   float64
		weight int
	}

	var sizes []weighted
	totalChars := 0
	blockCount := 0
	familyBlocks := make(map[string]int)

	// Track on how many distinct pages each (text, y-bucket) pair occurs
	repeatPages := make(map[string]map[int]struct{})

	for _, blocks := range pages {
		for _, b := range blocks {
			if b.CharCount == 0 {
				continue
			}
			sizes = append(sizes, weighted{size: roundSize(b.FontSize), weight: b.CharCount})
			totalChars += b.CharCount
			blockCount++
			familyBlocks[b.FontName]++

			key := repeatKey(b, config.RepeatYTolerance)
			if repeatPages[key] == nil {
				repeatPages[key] = make(map[int]struct{})
			}
			repeatPages[key][b.Page] = struct{}{}
		}
	}

	if blockCount == 0 {
		profile.P75, profile.P90, profile.P95 = 12.0, 12.0, 12.0
		return profile
	}

	sort.Slice(sizes, func(i, j int) bool { return sizes[i].size < sizes[j].size })

	percentile := func(p float64) float64 {
		target := p * float64(totalChars)
		cumulative := 0
		for _, w := range sizes {
			cumulative += w.weight
			if float64(cumulative) >= target {
				return w.size
			}
		}
		return sizes[len(sizes)-1].size
	}

	profile.P75 = percentile(0.75)
	profile.P90 = percentile(0.90)
	profile.P95 = percentile(0.95)

	for family, count := range familyBlocks {
		profile.familyShare[family] = float64(count) / float64(blockCount)
	}

	for key, pageSet := range repeatPages {
		if len(pageSet) >= config.RepeatMinPages {
			profile.repeated[key] = struct{}{}
		}
	}
	profile.repeatYTolerance = config.RepeatYTolerance

	return profile
}

// FamilyShare returns the fraction of blocks set in the given font family,
// in [0,1]. Unknown families return 0.
func (p *DocumentProfile) FamilyShare(family string) float64 {
	if p == nil {
		return 0
	}
	return p.familyShare[family]
}

// IsRepeated reports whether the block's text appears at the same vertical
// position on enough pages to be a running header or footer.
func (p *DocumentProfile) IsRepeated(b Block) bool {
	if p == nil {
		return false
	}
	_, ok := p.repeated[repeatKey(b, p.repeatYTolerance)]
	return ok
}

// Tier buckets a font size against the percentile breakpoints: 3 for sizes
// at or above P95, 2 for P90, 1 for P75, 0 for body-range sizes. Higher
// size means higher tier.
func (p *DocumentProfile) Tier(size float64) int {
	switch {
	case size >= p.P95:
		return 3
	case size >= p.P90:
		return 2
	case size >= p.P75:
		return 1
	default:
		return 0
	}
}

// repeatKey buckets a block by normalized text and vertical position
func repeatKey(b Block, yTolerance float64) string {
	if yTolerance <= 0 {
		yTolerance = 5.0
	}
	bucket := int(b.BBox.Y / yTolerance)
	return fmt.Sprintf("%d|%s", bucket, b.Text)
}
