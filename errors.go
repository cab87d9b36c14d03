package outliner

import "errors"

// Error kinds surfaced at the pipeline boundary. Per-page failures never
// carry these; they are isolated into warnings so one bad page (or one
// bad file in a batch) cannot halt processing.
var (
	// ErrUnsupportedDocument indicates a document the pipeline cannot read
	// at all: wrong file type, password protection, or a broken container.
	// The accompanying result is a well-formed empty outline.
	ErrUnsupportedDocument = errors.New("unsupported document")

	// ErrInvariantViolation indicates a pipeline bug (e.g., a candidate
	// with no script classification). It should never occur in practice.
	ErrInvariantViolation = errors.New("internal invariant violation")
)
