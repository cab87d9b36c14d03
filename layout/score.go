package layout

import (
	"strings"

	"github.com/tsawler/outliner/script"
)

// Candidate is a block annotated with its script classification and
// headingness scores. Candidates are created by the Scorer and never
// mutated after classification.
type Candidate struct {
	// Block is the scored block
	Block Block

	// Script is the block's dominant writing system
	Script script.Script

	// FontScore is the font sub-score in [0,1]
	FontScore float64

	// ContentScore is the content sub-score in [0,1]
	ContentScore float64

	// LayoutScore is the layout sub-score in [0,1]
	LayoutScore float64

	// Score is the weighted combination of the sub-scores, in [0,1]
	Score float64
}

// ScorerConfig holds configuration for headingness scoring
type ScorerConfig struct {
	// FontWeight, ContentWeight, LayoutWeight are the sub-score weights.
	// Defaults: 0.40, 0.35, 0.25
	FontWeight    float64
	ContentWeight float64
	LayoutWeight  float64

	// MaxHeadingWords is the word count above which the content score is
	// penalized (for scripts with word spacing)
	// Default: 12
	MaxHeadingWords int

	// MaxHeadingRunes is the rune count above which the content score is
	// penalized (for scripts without word spacing)
	// Default: 30
	MaxHeadingRunes int

	// RareFamilyShare is the maximum block share for a font family to
	// count as distinctive
	// Default: 0.05
	RareFamilyShare float64
}

// DefaultScorerConfig returns sensible default configuration
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		FontWeight:      0.40,
		ContentWeight:   0.35,
		LayoutWeight:    0.25,
		MaxHeadingWords: 12,
		MaxHeadingRunes: 30,
		RareFamilyShare: 0.05,
	}
}

// Scorer computes headingness scores for blocks against a document
// profile. Scoring is deterministic and side-effect-free.
type Scorer struct {
	config  ScorerConfig
	profile *DocumentProfile
}

// NewScorer creates a scorer with default configuration
func NewScorer(profile *DocumentProfile) *Scorer {
	return &Scorer{
		config:  DefaultScorerConfig(),
		profile: profile,
	}
}

// NewScorerWithConfig creates a scorer with custom configuration
func NewScorerWithConfig(profile *DocumentProfile, config ScorerConfig) *Scorer {
	return &Scorer{
		config:  config,
		profile: profile,
	}
}

// Score classifies the block's script, selects its profile, and computes
// the three sub-scores and their weighted combination.
func (s *Scorer) Score(b Block) Candidate {
	detected := script.Detect(b.Text)
	prof := script.ProfileFor(detected)

	cand := Candidate{
		Block:  b,
		Script: detected,
	}
	cand.FontScore = s.fontScore(b)
	cand.ContentScore = s.contentScore(b, prof)
	cand.LayoutScore = s.layoutScore(b)

	cand.Score = clamp01(s.config.FontWeight*cand.FontScore +
		s.config.ContentWeight*cand.ContentScore +
		s.config.LayoutWeight*cand.LayoutScore)

	return cand
}

// fontScore rewards font sizes above the body percentile, bold/italic
// faces, and distinctive font families; mixed sizes within a block are
// penalized.
func (s *Scorer) fontScore(b Block) float64 {
	body := s.profile.P75
	if body <= 0 {
		body = 12.0
	}

	score := 0.0

	ratio := b.FontSize / body
	if ratio > 1.02 {
		score += minFloat((ratio-1.0)*1.5, 0.6)
	}

	if b.Bold {
		score += 0.2
	}
	if b.Italic {
		score += 0.05
	}

	if share := s.profile.FamilyShare(b.FontName); share > 0 && share < s.config.RareFamilyShare {
		score += 0.15
	}

	if b.MixedSizes {
		score -= 0.2
	}

	return clamp01(score)
}

// contentScore rewards script-appropriate heading markers and heading-like
// shape; sentence-like structure is penalized. Capitalization signals are
// skipped for scripts without case, and length is measured in runes for
// scripts without word spacing.
func (s *Scorer) contentScore(b Block, prof script.Profile) float64 {
	score := 0.0
	text := b.Text

	if ok, _ := prof.MatchesNumbering(text); ok {
		score += 0.35
	}
	if prof.HasKeyword(text) {
		score += 0.25
	}

	if hasTerminalPunctuation(text, prof.TerminalPunctuation) {
		score -= 0.10
	} else {
		score += 0.15
	}

	if strings.HasSuffix(text, ":") && shortEnough(text, prof, s.config) {
		score += 0.10
	}

	if prof.UsesCapitalization && isAllCaps(text) {
		score += 0.15
	}

	if prof.UsesWordSpacing {
		words := len(strings.Fields(text))
		switch {
		case words <= 6:
			score += 0.15
		case words <= s.config.MaxHeadingWords:
			score += 0.08
		case words <= s.config.MaxHeadingWords+8:
			score -= 0.15
		default:
			score -= 0.30
		}
	} else {
		runes := b.CharCount
		switch {
		case runes <= s.config.MaxHeadingRunes/2:
			score += 0.15
		case runes <= s.config.MaxHeadingRunes:
			score += 0.08
		case runes <= s.config.MaxHeadingRunes*2:
			score -= 0.15
		default:
			score -= 0.30
		}
	}

	if countAny(text, prof.ClausePunctuation) >= 2 {
		score -= 0.20
	}

	return clamp01(score)
}

// layoutScore rewards centering, generous vertical whitespace around the
// block, and left positioning consistent with a section marker.
func (s *Scorer) layoutScore(b Block) float64 {
	score := 0.0

	if b.Centered {
		score += 0.40
	}

	if b.SpacingBefore > b.FontSize*1.2 {
		score += 0.25
	}
	if b.SpacingAfter > b.FontSize*0.8 {
		score += 0.15
	}

	if !b.Centered && b.PageWidth > 0 && b.Indentation <= b.PageWidth*0.15 {
		score += 0.20
	}

	return clamp01(score)
}

// shortEnough reports whether text is short by the profile's length
// convention (words or runes)
func shortEnough(text string, prof script.Profile, config ScorerConfig) bool {
	if prof.UsesWordSpacing {
		return len(strings.Fields(text)) <= config.MaxHeadingWords/2
	}
	return len([]rune(text)) <= config.MaxHeadingRunes/2
}

// hasTerminalPunctuation reports whether text ends with a sentence-ending
// mark for the script
func hasTerminalPunctuation(text string, terminal string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	return strings.ContainsRune(terminal, runes[len(runes)-1])
}

// isAllCaps reports whether text is at least 90% uppercase among its cased
// letters, requiring a minimum of three letters
func isAllCaps(text string) bool {
	upper := 0
	lower := 0
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			upper++
		} else if r >= 'a' && r <= 'z' {
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// countAny counts occurrences of any rune from set in text
func countAny(text, set string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(set, r) {
			count++
		}
	}
	return count
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
