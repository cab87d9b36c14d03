package script

import "unicode"

// Script represents the dominant Unicode writing system of a text block.
// It is used to select script-specific heading conventions.
type Script int

const (
	// Unknown is the zero value; Detect never returns it.
	Unknown Script = iota
	// Latin for English and most Western European languages
	Latin
	// Cyrillic for Russian, Ukrainian, Bulgarian, etc.
	Cyrillic
	// Greek for Greek
	Greek
	// Arabic for Arabic, Persian, Urdu, etc.
	Arabic
	// Hebrew for Hebrew and Yiddish
	Hebrew
	// Devanagari for Hindi, Marathi, Nepali, etc.
	Devanagari
	// CJK for Chinese ideographs and Japanese kana
	CJK
	// Hangul for Korean
	Hangul
	// Thai for Thai
	Thai
)

// String returns a string representation of the script
func (s Script) String() string {
	switch s {
	case Latin:
		return "Latin"
	case Cyrillic:
		return "Cyrillic"
	case Greek:
		return "Greek"
	case Arabic:
		return "Arabic"
	case Hebrew:
		return "Hebrew"
	case Devanagari:
		return "Devanagari"
	case CJK:
		return "CJK"
	case Hangul:
		return "Hangul"
	case Thai:
		return "Thai"
	default:
		return "Unknown"
	}
}

// Detect classifies the dominant script of a string by codepoint-range
// majority vote over its classifiable alphabetic characters. Digits,
// punctuation, whitespace, and symbols do not vote. Text with no
// classifiable characters falls back to Latin.
func Detect(text string) Script {
	counts := make(map[Script]int)

	for _, r := range text {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		counts[classifyRune(r)]++
	}

	best := Latin
	bestCount := 0
	for s, n := range counts {
		if n > bestCount || (n == bestCount && s < best) {
			best = s
			bestCount = n
		}
	}

	if bestCount == 0 {
		return Latin
	}
	return best
}

// classifyRune returns the script of a single classifiable character.
// Characters outside all known ranges count as Latin, which keeps the
// majority vote stable for mixed technical text.
func classifyRune(r rune) Script {
	switch {
	case isCyrillic(r):
		return Cyrillic
	case isGreek(r):
		return Greek
	case isArabic(r):
		return Arabic
	case isHebrew(r):
		return Hebrew
	case isDevanagari(r):
		return Devanagari
	case isHangul(r):
		return Hangul
	case isCJK(r):
		return CJK
	case isThai(r):
		return Thai
	default:
		return Latin
	}
}

// IsRTL reports whether the script is written right-to-left
func (s Script) IsRTL() bool {
	return s == Arabic || s == Hebrew
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isCyrillic reports whether r is in a Cyrillic Unicode block.
// This includes:
//   - Cyrillic: U+0400–U+04FF
//   - Cyrillic Supplement: U+0500–U+052F
func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) ||
		(r >= 0x0500 && r <= 0x052F)
}

// isGreek reports whether r is in a Greek Unicode block.
// This includes:
//   - Greek and Coptic: U+0370–U+03FF
//   - Greek Extended: U+1F00–U+1FFF
func isGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) ||
		(r >= 0x1F00 && r <= 0x1FFF)
}

// isDevanagari reports whether r is in a Devanagari Unicode block.
// This includes:
//   - Devanagari: U+0900–U+097F
//   - Devanagari Extended: U+A8E0–U+A8FF
func isDevanagari(r rune) bool {
	return (r >= 0x0900 && r <= 0x097F) ||
		(r >= 0xA8E0 && r <= 0xA8FF)
}

// isHangul reports whether r is in a Hangul Unicode block.
// This includes:
//   - Hangul Syllables: U+AC00–U+D7AF
//   - Hangul Jamo: U+1100–U+11FF
//   - Hangul Compatibility Jamo: U+3130–U+318F
func isHangul(r rune) bool {
	return (r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0x1100 && r <= 0x11FF) ||
		(r >= 0x3130 && r <= 0x318F)
}

// isCJK reports whether r is in a CJK ideograph or kana Unicode block.
// This includes:
//   - CJK Unified Ideographs: U+4E00–U+9FFF
//   - CJK Extension A: U+3400–U+4DBF
//   - Hiragana: U+3040–U+309F
//   - Katakana: U+30A0–U+30FF
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF)
}

// isThai reports whether r is in the Thai Unicode block (U+0E00–U+0E7F).
func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}
