package script

import (
	"regexp"
	"strings"
)

// Profile holds the script-specific conventions used when scoring and
// classifying heading candidates. Profiles are selected once per block via
// ProfileFor; scorers must not branch on Script directly.
type Profile struct {
	// Script is the script this profile applies to
	Script Script

	// Keywords are lowercase heading markers common in this script
	// (e.g., "chapter", "appendix")
	Keywords []string

	// NumberingPatterns match section-numbering prefixes (e.g., "1.2.3",
	// "Chapter 4", "第3章")
	NumberingPatterns []*regexp.Regexp

	// UsesCapitalization is false for scripts with no case distinction
	// (CJK, Thai, and the Indic and Semitic scripts); capitalization-based
	// content signals are disabled when false
	UsesCapitalization bool

	// UsesWordSpacing is false for scripts written without spaces between
	// words (CJK, Thai); length signals use rune counts instead of word
	// counts when false
	UsesWordSpacing bool

	// TerminalPunctuation are sentence-ending marks for this script;
	// headings rarely end with one
	TerminalPunctuation string

	// ClausePunctuation are clause-level marks whose repetition suggests
	// sentence structure rather than a heading
	ClausePunctuation string
}

// Shared numbering patterns: decimal section numbers dominate across
// scripts, so every profile includes them.
var (
	decimalNumbering = regexp.MustCompile(`^\d+(\.\d+)*\.?\s*\S`)
	romanNumbering   = regexp.MustCompile(`^[IVXLCDM]+\.\s`)
	letterNumbering  = regexp.MustCompile(`^[A-Z]\.\s`)
)

// profiles is the lookup table keyed by detected script. Keyword lists
// cover the most common section markers for each writing system.
var profiles = map[Script]Profile{
	Latin: {
		Script: Latin,
		Keywords: []string{
			"chapter", "section", "part", "appendix", "introduction",
			"conclusion", "summary", "overview", "background", "contents",
			"abstract", "references", "methodology", "results", "discussion",
			"acknowledgements", "glossary", "index", "preface", "foreword",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)(chapter|section|part|appendix)\s+[\dIVXLC]+`),
			decimalNumbering,
			romanNumbering,
			letterNumbering,
		},
		UsesCapitalization:  true,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!?",
		ClausePunctuation:   ",;:",
	},
	Cyrillic: {
		Script: Cyrillic,
		Keywords: []string{
			"глава", "раздел", "часть", "приложение", "введение",
			"заключение", "содержание", "оглавление", "аннотация",
			"список литературы", "предисловие",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)(глава|раздел|часть|приложение)\s+\d+`),
			decimalNumbering,
			romanNumbering,
		},
		UsesCapitalization:  true,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!?",
		ClausePunctuation:   ",;:",
	},
	Greek: {
		Script: Greek,
		Keywords: []string{
			"κεφάλαιο", "ενότητα", "μέρος", "παράρτημα", "εισαγωγή",
			"συμπεράσματα", "περιεχόμενα", "περίληψη",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)(κεφάλαιο|ενότητα|μέρος)\s+\d+`),
			decimalNumbering,
			romanNumbering,
		},
		UsesCapitalization:  true,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!;",
		ClausePunctuation:   ",·:",
	},
	Arabic: {
		Script: Arabic,
		Keywords: []string{
			"الفصل", "الباب", "القسم", "الملحق", "مقدمة", "خاتمة",
			"المحتويات", "الفهرس", "ملخص", "المراجع",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(الفصل|الباب|القسم)\s+`),
			regexp.MustCompile(`^[٠-٩]+([.．][٠-٩]+)*`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!؟",
		ClausePunctuation:   "،؛:",
	},
	Hebrew: {
		Script: Hebrew,
		Keywords: []string{
			"פרק", "חלק", "סעיף", "נספח", "מבוא", "סיכום",
			"תוכן עניינים", "תקציר", "מקורות",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(פרק|חלק|סעיף)\s+`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!?",
		ClausePunctuation:   ",;:",
	},
	Devanagari: {
		Script: Devanagari,
		Keywords: []string{
			"अध्याय", "भाग", "खंड", "परिशिष्ट", "प्रस्तावना",
			"निष्कर्ष", "विषय-सूची", "सारांश", "संदर्भ",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(अध्याय|भाग|खंड)\s+`),
			regexp.MustCompile(`^[०-९]+([.．][०-९]+)*`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     true,
		TerminalPunctuation: "।.!?",
		ClausePunctuation:   ",;:",
	},
	CJK: {
		Script: CJK,
		Keywords: []string{
			"目次", "目录", "目錄", "序論", "序论", "緒論", "結論", "结论",
			"概要", "要約", "摘要", "付録", "附录", "附錄", "参考文献",
			"はじめに", "おわりに", "索引",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^第\s*[0-9０-９一二三四五六七八九十百]+\s*[章節节部篇課课編编]`),
			regexp.MustCompile(`^[0-9０-９]+([.．、][0-9０-９]+)*`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     false,
		TerminalPunctuation: "。！？.!?",
		ClausePunctuation:   "、，；：",
	},
	Hangul: {
		Script: Hangul,
		Keywords: []string{
			"서론", "결론", "목차", "요약", "부록", "참고문헌",
			"개요", "찾아보기", "머리말",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^제\s*\d+\s*[장절부편]`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     true,
		TerminalPunctuation: ".!?。",
		ClausePunctuation:   ",;:、",
	},
	Thai: {
		Script: Thai,
		Keywords: []string{
			"บทที่", "ภาคผนวก", "บทนำ", "บทสรุป", "สารบัญ",
			"ส่วนที่", "เอกสารอ้างอิง",
		},
		NumberingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`^(บทที่|ส่วนที่)\s*\d+`),
			decimalNumbering,
		},
		UsesCapitalization:  false,
		UsesWordSpacing:     false,
		TerminalPunctuation: ".!?",
		ClausePunctuation:   ",;:",
	},
}

// ProfileFor returns the profile for a script. Unrecognized scripts get the
// Latin profile, matching the detector's fallback.
func ProfileFor(s Script) Profile {
	if p, ok := profiles[s]; ok {
		return p
	}
	return profiles[Latin]
}

// MatchesNumbering reports whether text starts with one of the profile's
// section-numbering patterns, and returns the matched prefix.
func (p Profile) MatchesNumbering(text string) (bool, string) {
	text = strings.TrimSpace(text)
	for _, pattern := range p.NumberingPatterns {
		if match := pattern.FindString(text); match != "" {
			return true, strings.TrimSpace(match)
		}
	}
	return false, ""
}

// HasKeyword reports whether text contains one of the profile's heading
// keywords. Matching is case-insensitive for capitalizing scripts.
func (p Profile) HasKeyword(text string) bool {
	if p.UsesCapitalization {
		text = strings.ToLower(text)
	}
	for _, kw := range p.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// numberGroups matches runs of digits (ASCII, Arabic-Indic, Devanagari,
// or fullwidth) used to measure numbering depth.
var numberGroups = regexp.MustCompile(`[0-9٠-٩०-९０-９]+`)

// NumberingDepth returns the depth of a section-numbering prefix: the
// count of numeric groups in the matched prefix ("2." is depth 1,
// "2.1" is depth 2, "1.2.3" is depth 3). Returns 0 when the text has no
// numbering prefix.
func (p Profile) NumberingDepth(text string) int {
	ok, prefix := p.MatchesNumbering(text)
	if !ok {
		return 0
	}

	groups := numberGroups.FindAllString(prefix, -1)
	if len(groups) == 0 {
		// Roman or letter numbering counts as a single group
		return 1
	}
	return len(groups)
}
