package outliner

import "time"

// Default resource limits for a single document.
const (
	// DefaultMaxPages is the page-count ceiling; pages beyond it are not
	// processed
	DefaultMaxPages = 50

	// DefaultTimeout is the wall-clock budget per document; on expiry the
	// partial outline built so far is returned
	DefaultTimeout = 10 * time.Second
)

// ExtractOptions holds configuration for outline extraction. The CLI
// parses its flags and environment into this value; the pipeline never
// re-derives configuration internally.
type ExtractOptions struct {
	// Resource limits
	maxPages int
	timeout  time.Duration
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages: DefaultMaxPages,
		timeout:  DefaultTimeout,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxPages: o.maxPages,
		timeout:  o.timeout,
	}
}

// MaxPages sets the page-count ceiling. Values below 1 are ignored.
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	if n >= 1 {
		newExt.options.maxPages = n
	}
	return newExt
}

// Timeout sets the wall-clock budget for a document. Non-positive values
// are ignored.
func (e *Extractor) Timeout(d time.Duration) *Extractor {
	newExt := e.clone()
	if d > 0 {
		newExt.options.timeout = d
	}
	return newExt
}
