package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/outliner/script"
)

// FilterConfig holds configuration for candidate filtering
type FilterConfig struct {
	// MinScore is the minimum combined score for a candidate to survive
	// Default: 0.38
	MinScore float64

	// MinTextLength is the minimum rune count for a candidate
	// Default: 2
	MinTextLength int

	// MaxDigitRatio is the maximum fraction of digit/currency runes before
	// a candidate is excluded (dates, prices, serial numbers)
	// Default: 0.4
	MaxDigitRatio float64
}

// DefaultFilterConfig returns sensible default configuration
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		MinScore:      0.38,
		MinTextLength: 2,
		MaxDigitRatio: 0.4,
	}
}

// Filter discards candidates that fail the minimum score or match
// exclusion patterns. Filtering is a pure predicate over each candidate
// and never reorders survivors.
type Filter struct {
	config  FilterConfig
	profile *DocumentProfile
}

// NewFilter creates a filter with default configuration
func NewFilter(profile *DocumentProfile) *Filter {
	return &Filter{
		config:  DefaultFilterConfig(),
		profile: profile,
	}
}

// NewFilterWithConfig creates a filter with custom configuration
func NewFilterWithConfig(profile *DocumentProfile, config FilterConfig) *Filter {
	return &Filter{
		config:  config,
		profile: profile,
	}
}

var (
	// pageNumberPattern matches text that is nothing but a page marker:
	// "3", "- 3 -", "Page 3", "Page 3 of 10", "p. 3", "3 / 10"
	pageNumberPattern = regexp.MustCompile(`^(?i)\s*(?:[-–—•.\s]*\d+[-–—•.\s]*|page\s+\d+(?:\s+of\s+\d+)?|p\.\s*\d+|\d+\s*/\s*\d+)\s*$`)

	// urlPattern matches URLs and email addresses anywhere in the text
	urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.|[\w.+-]+@[\w-]+(?:\.[\w-]+)+)`)

	// boilerplatePattern matches copyright and legal boilerplate, contact
	// labels, and bare domain names: footer and letterhead shapes that are
	// never headings
	boilerplatePattern = regexp.MustCompile(`(?i)(?:copyright|all rights reserved|[©®™]|\b(?:tel|fax|phone|email|address|contact|date|time|location)\s*:|\b[\w-]+\.(?:com|org|ca)\b)`)
)

// latinDanglingWords are words a Latin-script heading never ends on and
// conjunctions it never starts with; their presence marks a wrapped-line
// fragment rather than a heading.
var latinDanglingWords = map[string]bool{
	"and": true, "or": true, "of": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "the": true, "a": true, "an": true,
}

// Apply returns the surviving candidates in their original order
func (f *Filter) Apply(candidates []Candidate) []Candidate {
	var survivors []Candidate
	for _, c := range candidates {
		if f.keep(c) {
			survivors = append(survivors, c)
		}
	}
	return survivors
}

// keep is the filtering predicate. Exclusion patterns apply regardless of
// score: page numbers, URLs, legal boilerplate, running headers/footers,
// digit-heavy text, and bare fragments are never headings.
func (f *Filter) keep(c Candidate) bool {
	text := c.Block.Text

	if c.Block.CharCount < f.config.MinTextLength {
		return false
	}
	if pageNumberPattern.MatchString(text) {
		return false
	}
	if urlPattern.MatchString(text) {
		return false
	}
	if boilerplatePattern.MatchString(text) {
		return false
	}
	if digitRatio(text) > f.config.MaxDigitRatio {
		return false
	}
	if f.profile.IsRepeated(c.Block) {
		return false
	}
	if c.Script == script.Latin && isDanglingFragment(text) {
		return false
	}

	return c.Score >= f.config.MinScore
}

// digitRatio returns the fraction of runes that are digits or currency
// punctuation
func digitRatio(text string) float64 {
	total := 0
	digitish := 0
	for _, r := range text {
		total++
		if (r >= '0' && r <= '9') || strings.ContainsRune("$€£¥₹,.%", r) {
			digitish++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digitish) / float64(total)
}

// isDanglingFragment reports whether text ends on a preposition, article,
// or conjunction, or opens with a conjunction. That is the shape of a line
// broken mid-sentence.
func isDanglingFragment(text string) bool {
	words := strings.Fields(strings.ToLower(strings.TrimRight(text, ":")))
	if len(words) == 0 {
		return false
	}
	if latinDanglingWords[words[len(words)-1]] {
		return true
	}
	first := words[0]
	return first == "and" || first == "or"
}
