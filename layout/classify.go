package layout

import (
	"sort"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/script"
)

// Classified is a candidate with its final hierarchy level assigned
type Classified struct {
	Candidate

	// Level is the assigned heading level (H1, H2, or H3)
	Level model.Level
}

// ClassifierConfig holds configuration for hierarchy classification
type ClassifierConfig struct {
	// PromotionMargin is the content-score delta above the tier mean
	// required to promote a candidate one level
	// Default: 0.25
	PromotionMargin float64
}

// DefaultClassifierConfig returns sensible default configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		PromotionMargin: 0.25,
	}
}

// Classifier assigns hierarchy levels to surviving candidates using
// font-size tiers, with a single content-based override for numbering
// depth at equal font size.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration
func NewClassifier() *Classifier {
	return &Classifier{
		config: DefaultClassifierConfig(),
	}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	return &Classifier{
		config: config,
	}
}

// Classify partitions candidates into font-size tiers against the profile
// breakpoints and maps tiers to levels in descending size order. The
// largest tier becomes the Title candidate when it appears only on the
// first page; remaining tiers map to H1, H2, H3, compressed when fewer
// than three tiers exist. Candidate order is preserved in the output.
func (c *Classifier) Classify(candidates []Candidate, profile *DocumentProfile) (title *Candidate, headings []Classified) {
	if len(candidates) == 0 {
		return nil, nil
	}

	tierOf := func(cand Candidate) int {
		return profile.Tier(roundSize(cand.Block.FontSize))
	}

	title = c.selectTitle(candidates, tierOf)

	// Distinct tiers among the remaining candidates, largest first
	tierSet := make(map[int]bool)
	for i := range candidates {
		if title != nil && &candidates[i] == title {
			continue
		}
		tierSet[tierOf(candidates[i])] = true
	}
	tiers := make([]int, 0, len(tierSet))
	for t := range tierSet {
		tiers = append(tiers, t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))

	levelOf := make(map[int]model.Level)
	for i, t := range tiers {
		if i >= 3 {
			break // deeper tiers have no level to map to
		}
		levelOf[t] = model.LevelH1 + model.Level(i)
	}

	for i := range candidates {
		if title != nil && &candidates[i] == title {
			continue
		}
		level, ok := levelOf[tierOf(candidates[i])]
		if !ok {
			continue
		}
		headings = append(headings, Classified{
			Candidate: candidates[i],
			Level:     level,
		})
	}

	c.applyNumberingOverride(headings, tierOf)

	return title, headings
}

// selectTitle picks the Title candidate: the best-scoring member of the
// largest font-size tier, provided that tier appears only on the first
// page. A size that recurs on later pages is a section-heading size, not
// a title size.
func (c *Classifier) selectTitle(candidates []Candidate, tierOf func(Candidate) int) *Candidate {
	maxTier := -1
	for _, cand := range candidates {
		if t := tierOf(cand); t > maxTier {
			maxTier = t
		}
	}
	if maxTier < 0 {
		return nil
	}

	var members []*Candidate
	for i := range candidates {
		if tierOf(candidates[i]) != maxTier {
			continue
		}
		if candidates[i].Block.Page != 0 {
			return nil
		}
		members = append(members, &candidates[i])
	}
	if len(members) == 0 {
		return nil
	}

	best := members[0]
	for _, m := range members[1:] {
		if m.Score > best.Score {
			best = m
			continue
		}
		if m.Score == best.Score && m.Block.BBox.Top() > best.Block.BBox.Top() {
			best = m
		}
	}
	return best
}

// applyNumberingOverride refines levels within each tier. At numerically
// equal font sizes, numbering-pattern depth is the primary tie-break:
// "1.2" sits one level below "1." even when their sizes match. When
// depths give no signal, a candidate whose content score exceeds the tier
// mean by the promotion margin moves up one level. This is the sole
// content-based override.
func (c *Classifier) applyNumberingOverride(headings []Classified, tierOf func(Candidate) int) {
	byTier := make(map[int][]int)
	for i := range headings {
		t := tierOf(headings[i].Candidate)
		byTier[t] = append(byTier[t], i)
	}

	for _, indices := range byTier {
		if len(indices) < 2 {
			continue
		}

		depths := make([]int, len(indices))
		minDepth := 0
		meanContent := 0.0
		for j, idx := range indices {
			h := headings[idx]
			prof := script.ProfileFor(h.Script)
			depths[j] = prof.NumberingDepth(h.Block.Text)
			if depths[j] > 0 && (minDepth == 0 || depths[j] < minDepth) {
				minDepth = depths[j]
			}
			meanContent += h.ContentScore
		}
		meanContent /= float64(len(indices))

		for j, idx := range indices {
			h := &headings[idx]

			if depths[j] > minDepth && minDepth > 0 {
				demoted := h.Level + model.Level(depths[j]-minDepth)
				if demoted > model.LevelH3 {
					demoted = model.LevelH3
				}
				h.Level = demoted
				continue
			}

			if h.Level > model.LevelH1 && h.ContentScore-meanContent > c.config.PromotionMargin {
				h.Level--
			}
		}
	}
}
