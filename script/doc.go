// Package script classifies the dominant Unicode writing system of text
// blocks and provides per-script heading conventions.
//
// Detection is a codepoint-range majority vote over classifiable
// alphabetic characters; text with none (pure digits or punctuation)
// falls back to Latin.
//
// Script-specific behavior is modeled as a [Profile] selected once per
// block from a lookup table:
//
//	prof := script.ProfileFor(script.Detect(blockText))
//	if prof.UsesCapitalization { ... }
//
// Profiles carry heading keyword lists, section-numbering patterns, and
// flags for conventions that do not apply everywhere (CJK and Thai have
// no capitalization signal and no word-boundary spacing).
package script
