package outliner

import (
	"context"
	"fmt"

	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/reader"
	"github.com/tsawler/outliner/script"
)

// Extractor provides a fluent interface for extracting outlines from PDF
// documents. Configuration methods return a modified copy, so a
// configured Extractor is safe to reuse across documents.
type Extractor struct {
	filename string
	source   SpanSource
	options  ExtractOptions
}

// clone creates a copy of the extractor with the same configuration
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		source:   e.source,
		options:  e.options.clone(),
	}
}

// Outline runs the extraction pipeline and returns the document outline,
// any warnings accumulated along the way, and an error for failures that
// prevented extraction entirely. The result is always a well-formed
// outline, possibly empty; warnings flag skipped pages and truncation.
func (e *Extractor) Outline() (*model.Outline, []Warning, error) {
	return e.OutlineContext(context.Background())
}

// OutlineContext is like Outline but honors the provided context for
// cancellation in addition to the configured per-document timeout.
func (e *Extractor) OutlineContext(ctx context.Context) (*model.Outline, []Warning, error) {
	var warnings []Warning

	src := e.source
	if src == nil {
		r, err := reader.Open(e.filename)
		if err != nil {
			warnings = append(warnings, Warning{
				Kind:    WarnUnsupportedDocument,
				Page:    -1,
				Message: err.Error(),
			})
			return model.NewOutline(), warnings, fmt.Errorf("%w: %s", ErrUnsupportedDocument, e.filename)
		}
		defer r.Close()
		src = r
	}

	ctx, cancel := context.WithTimeout(ctx, e.options.timeout)
	defer cancel()

	pages, pageWarnings := e.collectBlocks(ctx, src)
	warnings = append(warnings, pageWarnings...)

	total := 0
	for _, blocks := range pages {
		total += len(blocks)
	}
	if total == 0 {
		warnings = append(warnings, Warning{
			Kind:    WarnUnsupportedDocument,
			Page:    -1,
			Message: "no text content found; document may be image-only or empty",
		})
		return model.NewOutline(), warnings, nil
	}

	profile := layout.BuildProfile(pages)
	scorer := layout.NewScorer(profile)

	candidates := make([]layout.Candidate, 0, total)
	for _, blocks := range pages {
		for _, b := range blocks {
			cand := scorer.Score(b)
			if cand.Script == script.Unknown {
				return model.NewOutline(), warnings,
					fmt.Errorf("%w: block %q has no script classification", ErrInvariantViolation, b.Text)
			}
			candidates = append(candidates, cand)
		}
	}

	candidates = layout.NewFilter(profile).Apply(candidates)
	title, headings := layout.NewClassifier().Classify(candidates, profile)
	outline := layout.NewAssembler().Assemble(title, headings)

	return outline, warnings, nil
}

// collectBlocks walks the document pages in order and consolidates each
// page's spans into blocks. Malformed pages are skipped with a warning;
// hitting the page ceiling or the deadline stops the walk with a warning,
// leaving the blocks gathered so far as the partial input.
func (e *Extractor) collectBlocks(ctx context.Context, src SpanSource) ([][]layout.Block, []Warning) {
	var warnings []Warning

	pageCount := src.PageCount()
	if pageCount > e.options.maxPages {
		warnings = append(warnings, Warning{
			Kind:    WarnResourceExceeded,
			Page:    -1,
			Message: fmt.Sprintf("document has %d pages; processing first %d", pageCount, e.options.maxPages),
		})
		pageCount = e.options.maxPages
	}

	lines := layout.NewLineDetector()
	blocks := layout.NewBlockDetector()

	pages := make([][]layout.Block, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		if ctx.Err() != nil {
			warnings = append(warnings, Warning{
				Kind:    WarnResourceExceeded,
				Page:    i,
				Message: fmt.Sprintf("time budget exhausted after %d of %d pages; outline is partial", i, pageCount),
			})
			break
		}

		spans, err := src.ExtractSpans(i)
		if err != nil {
			warnings = append(warnings, Warning{
				Kind:    WarnMalformedPage,
				Page:    i,
				Message: err.Error(),
			})
			continue
		}

		width, height := src.PageSize(i)
		pages = append(pages, blocks.Detect(lines.Detect(spans), width, height))
	}

	return pages, warnings
}
