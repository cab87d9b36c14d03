// Package outliner converts page-based PDF documents into structured
// outlines: a title plus nested H1/H2/H3 headings, each tied to a
// zero-based page number.
//
// Basic usage:
//
//	outline, warnings, err := outliner.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", outliner.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := outliner.Open("report.pdf").
//	    MaxPages(20).
//	    Timeout(5 * time.Second).
//	    Outline()
//
// For advanced use cases, the lower-level layout package is also available.
package outliner

import (
	"github.com/tsawler/outliner/model"
)

// SpanSource yields decoded text spans per page. The reader package
// provides the PDF implementation; tests supply in-memory sources.
type SpanSource interface {
	// PageCount returns the number of pages available
	PageCount() int

	// PageSize returns the width and height of a zero-based page
	PageSize(pageIndex int) (width, height float64)

	// ExtractSpans decodes the spans of a zero-based page. An error is
	// scoped to that page; callers skip it and continue.
	ExtractSpans(pageIndex int) ([]model.Span, error)
}

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The underlying reader is opened lazily by the terminal Outline call and
// closed when it completes.
//
// Example:
//
//	outline, warnings, err := outliner.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened span source.
// The caller is responsible for the source's lifecycle.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	outline, warnings, err := outliner.FromSource(r).Outline()
func FromSource(src SpanSource) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline wraps a call to Outline() and panics if the error is
// non-nil, discarding warnings. It is intended for scripts and tests.
//
// Example:
//
//	outline := outliner.MustOutline(outliner.Open("document.pdf").Outline())
func MustOutline(outline *model.Outline, _ []Warning, err error) *model.Outline {
	if err != nil {
		panic(err)
	}
	return outline
}
