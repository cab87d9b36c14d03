// Package reader adapts the external PDF page decoder
// (github.com/ledongthuc/pdf) to the span contract consumed by the
// outline pipeline: ordered pages of styled text spans with position and
// font metadata.
//
// The reader owns all document I/O. Per-page decoding failures are
// returned as errors scoped to that page so the caller can skip the page
// and continue; container-level failures (bad signature, encryption)
// surface from [Open] as [ErrNotPDF] or [ErrEncrypted].
package reader
