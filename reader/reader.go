package reader

import (
	"errors"
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/tsawler/outliner/model"
)

// Reader adapts the PDF page decoder to the span contract consumed by the
// pipeline. It is the only component that touches the document file.
type Reader struct {
	file *os.File
	pdf  *pdflib.Reader
	path string
}

var (
	// ErrNotPDF indicates the file does not carry a PDF signature
	ErrNotPDF = errors.New("not a PDF file")

	// ErrEncrypted indicates the document is password-protected or could
	// not be parsed at the container level
	ErrEncrypted = errors.New("document is encrypted or unreadable")
)

// Default page dimensions (US Letter, points) used when a page carries no
// usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Open opens a PDF file for span extraction. The returned Reader must be
// closed when done.
func Open(path string) (*Reader, error) {
	if err := sniffPDF(path); err != nil {
		return nil, err
	}

	file, r, err := pdflib.Open(path)
	if err != nil {
		// The signature matched, so a parse failure here means an
		// encrypted or structurally broken container
		return nil, fmt.Errorf("%w: %v", ErrEncrypted, err)
	}

	return &Reader{
		file: file,
		pdf:  r,
		path: path,
	}, nil
}

// Close releases the underlying file
func (r *Reader) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// PageSize returns the width and height of a zero-based page, falling back
// to US Letter when the page has no usable MediaBox.
func (r *Reader) PageSize(pageIndex int) (width, height float64) {
	width, height = defaultPageWidth, defaultPageHeight

	page := r.pdf.Page(pageIndex + 1)
	if page.V.IsNull() {
		return width, height
	}

	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return width, height
	}

	w := box.Index(2).Float64() - box.Index(0).Float64()
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if w > 0 && h > 0 {
		width, height = w, h
	}
	return width, height
}

// ExtractSpans decodes the styled text spans of a zero-based page. A
// decoding failure affects only that page; callers skip it and continue.
func (r *Reader) ExtractSpans(pageIndex int) (spans []model.Span, err error) {
	// The decoder panics on some malformed content streams; contain the
	// damage to this page
	defer func() {
		if rec := recover(); rec != nil {
			spans = nil
			err = fmt.Errorf("page %d: malformed content stream: %v", pageIndex, rec)
		}
	}()

	page := r.pdf.Page(pageIndex + 1)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", pageIndex)
	}

	content := page.Content()
	spans = make([]model.Span, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		bbox := model.NewBBox(t.X, t.Y, t.W, t.FontSize)
		spans = append(spans, model.NewSpan(t.S, bbox, t.Font, t.FontSize, pageIndex))
	}

	return spans, nil
}

// sniffPDF verifies the file starts with the %PDF- signature. PDF allows
// the header within the first 1024 bytes, so the whole prefix is scanned.
func sniffPDF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 1024)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	if !containsSignature(buf[:n]) {
		return ErrNotPDF
	}
	return nil
}

// containsSignature scans for the %PDF- marker
func containsSignature(buf []byte) bool {
	sig := []byte("%PDF-")
	for i := 0; i+len(sig) <= len(buf); i++ {
		match := true
		for j := range sig {
			if buf[i+j] != sig[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
