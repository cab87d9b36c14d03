package outliner

import (
	"fmt"
	"strings"
)

// WarningKind categorizes non-fatal conditions encountered during
// extraction.
type WarningKind int

const (
	// WarnMalformedPage indicates a page that could not be decoded and
	// was skipped
	WarnMalformedPage WarningKind = iota

	// WarnUnsupportedDocument indicates the whole document yielded no
	// usable content (encrypted, image-only, or empty)
	WarnUnsupportedDocument

	// WarnResourceExceeded indicates the page-count ceiling or wall-clock
	// budget was hit and the result is partial
	WarnResourceExceeded
)

// String returns a string representation of the warning kind
func (k WarningKind) String() string {
	switch k {
	case WarnMalformedPage:
		return "malformed page"
	case WarnUnsupportedDocument:
		return "unsupported document"
	case WarnResourceExceeded:
		return "resource exceeded"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal condition encountered during extraction.
// Warnings accompany results; they never abort a document run.
type Warning struct {
	// Kind is the warning category
	Kind WarningKind

	// Page is the zero-based page the warning applies to, or -1 for
	// document-scoped warnings
	Page int

	// Message is a human-readable description
	Message string
}

// String returns a formatted description of the warning
func (w Warning) String() string {
	if w.Page >= 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Kind, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
