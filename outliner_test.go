package outliner

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
)

// fakeSource is an in-memory span source for pipeline tests
type fakeSource struct {
	pages    [][]model.Span
	failPage int
}

func newFakeSource(pages [][]model.Span) *fakeSource {
	return &fakeSource{pages: pages, failPage: -1}
}

func (f *fakeSource) PageCount() int {
	return len(f.pages)
}

func (f *fakeSource) PageSize(pageIndex int) (width, height float64) {
	return 612, 792
}

func (f *fakeSource) ExtractSpans(pageIndex int) ([]model.Span, error) {
	if pageIndex == f.failPage {
		return nil, fmt.Errorf("page %d: malformed content stream", pageIndex)
	}
	return f.pages[pageIndex], nil
}

// span places a text run on a page
func span(text string, x, y, w, fontSize float64, fontName string, page int) model.Span {
	return model.NewSpan(text, model.NewBBox(x, y, w, fontSize), fontName, fontSize, page)
}

// bodyText is a page-filler paragraph whose characters anchor the body
// font-size percentile
func bodyText(page int) model.Span {
	return span(strings.Repeat("lorem ", 10), 72, 520, 468, 11, "Helvetica", page)
}

// reportPages builds a three-page document with a one-off title size on the
// first page and a recurring section size
func reportPages() [][]model.Span {
	return [][]model.Span{
		{
			span("Annual Report", 206, 700, 200, 24, "Helvetica-Bold", 0),
			span("Introduction", 72, 600, 150, 18, "Helvetica-Bold", 0),
			bodyText(0),
		},
		{
			span("Financial Overview", 72, 700, 220, 18, "Helvetica-Bold", 1),
			bodyText(1),
		},
		{
			span("Outlook", 72, 700, 90, 18, "Helvetica-Bold", 2),
			bodyText(2),
		},
	}
}

// chapterPages builds a three-page document whose largest size recurs on
// every page
func chapterPages() [][]model.Span {
	pages := make([][]model.Span, 3)
	for i := range pages {
		pages[i] = []model.Span{
			span(fmt.Sprintf("Chapter %d", i+1), 72, 700, 120, 20, "Helvetica-Bold", i),
			bodyText(i),
		}
	}
	return pages
}

func TestOutlineReportDocument(t *testing.T) {
	outline, warnings, err := FromSource(newFakeSource(reportPages())).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	if outline.Title != "Annual Report" {
		t.Errorf("Expected title %q, got %q", "Annual Report", outline.Title)
	}

	want := []model.Heading{
		{Level: model.LevelH1, Text: "Introduction", Page: 0},
		{Level: model.LevelH1, Text: "Financial Overview", Page: 1},
		{Level: model.LevelH1, Text: "Outlook", Page: 2},
	}
	if outline.HeadingCount() != len(want) {
		t.Fatalf("Expected %d headings, got %d: %+v", len(want), outline.HeadingCount(), outline.Headings)
	}
	for i, w := range want {
		h := outline.Headings[i]
		if h.Level != w.Level || h.Text != w.Text || h.Page != w.Page {
			t.Errorf("Heading %d: got %v %q page %d, want %v %q page %d",
				i, h.Level, h.Text, h.Page, w.Level, w.Text, w.Page)
		}
	}
}

func TestOutlineChapterDocument(t *testing.T) {
	outline, _, err := FromSource(newFakeSource(chapterPages())).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	// The chapter size recurs on later pages, so no title is chosen
	if outline.Title != "" {
		t.Errorf("Expected empty title, got %q", outline.Title)
	}

	h1s := outline.HeadingsAtLevel(model.LevelH1)
	if len(h1s) != 3 {
		t.Fatalf("Expected 3 H1 chapters, got %d: %+v", len(h1s), outline.Headings)
	}
	for i, h := range h1s {
		if h.Page != i {
			t.Errorf("Chapter %d: expected page %d, got %d", i+1, i, h.Page)
		}
	}
}

func TestOutlineEmptyDocument(t *testing.T) {
	outline, warnings, err := FromSource(newFakeSource([][]model.Span{{}, {}})).Outline()
	if err != nil {
		t.Fatalf("Expected nil error for empty document, got %v", err)
	}

	if outline == nil || outline.Headings == nil {
		t.Fatal("Expected well-formed empty outline")
	}
	if outline.HeadingCount() != 0 {
		t.Errorf("Expected 0 headings, got %d", outline.HeadingCount())
	}

	if len(warnings) != 1 || warnings[0].Kind != WarnUnsupportedDocument {
		t.Errorf("Expected a single unsupported-document warning, got %v", warnings)
	}
}

func TestOutlineMalformedPage(t *testing.T) {
	src := newFakeSource(reportPages())
	src.failPage = 1

	outline, warnings, err := FromSource(src).Outline()
	if err != nil {
		t.Fatalf("Expected malformed page to be skipped, got error %v", err)
	}

	found := false
	for _, w := range warnings {
		if w.Kind == WarnMalformedPage && w.Page == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a malformed-page warning for page 1, got %v", warnings)
	}

	// Headings from the surviving pages are still present
	for _, h := range outline.Headings {
		if h.Page == 1 {
			t.Errorf("Expected no headings from the failed page, got %q", h.Text)
		}
	}
	if outline.HeadingCount() == 0 {
		t.Error("Expected headings from the surviving pages")
	}
}

func TestOutlinePageCeiling(t *testing.T) {
	outline, warnings, err := FromSource(newFakeSource(chapterPages())).
		MaxPages(1).
		Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	found := false
	for _, w := range warnings {
		if w.Kind == WarnResourceExceeded {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a resource-exceeded warning, got %v", warnings)
	}

	for _, h := range outline.Headings {
		if h.Page > 0 {
			t.Errorf("Expected only first-page headings, got %q on page %d", h.Text, h.Page)
		}
	}
}

func TestOutlineSinglePageDocument(t *testing.T) {
	// One page, one large centered bold line over plain body text: the
	// line becomes the title and the outline stays empty
	pages := [][]model.Span{
		{
			span("Annual Report", 206, 700, 200, 24, "Helvetica-Bold", 0),
			bodyText(0),
		},
	}

	outline, warnings, err := FromSource(newFakeSource(pages)).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	if outline.Title != "Annual Report" {
		t.Errorf("Expected title %q, got %q", "Annual Report", outline.Title)
	}
	if outline.HeadingCount() != 0 {
		t.Errorf("Expected empty outline, got %+v", outline.Headings)
	}
	if outline.Headings == nil {
		t.Error("Expected non-nil Headings slice")
	}
}

func TestOutlineContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outline, warnings, err := FromSource(newFakeSource(reportPages())).OutlineContext(ctx)
	if err != nil {
		t.Fatalf("Expected nil error for expired budget, got %v", err)
	}

	if outline == nil || outline.Headings == nil {
		t.Fatal("Expected well-formed partial outline")
	}

	found := false
	for _, w := range warnings {
		if w.Kind == WarnResourceExceeded {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a resource-exceeded warning, got %v", warnings)
	}
}

func TestOutlineDeadlinePartialResult(t *testing.T) {
	// A deadline expiring mid-document keeps the pages processed so far
	src := newFakeSource(chapterPages())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := FromSource(src)
	pages, warnings := e.collectBlocks(ctx, src)
	if len(warnings) != 0 {
		t.Fatalf("Expected clean run before expiry, got %v", warnings)
	}
	if len(pages) != 3 {
		t.Fatalf("Expected 3 pages of blocks, got %d", len(pages))
	}

	cancel()
	pages, warnings = e.collectBlocks(ctx, src)
	if len(pages) != 0 {
		t.Errorf("Expected no pages after expiry, got %d", len(pages))
	}
	if len(warnings) != 1 || warnings[0].Kind != WarnResourceExceeded {
		t.Errorf("Expected a single resource-exceeded warning, got %v", warnings)
	}
}

func TestOutlinePageBounds(t *testing.T) {
	src := newFakeSource(reportPages())
	outline, _, err := FromSource(src).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	for _, h := range outline.Headings {
		if h.Page < 0 || h.Page >= src.PageCount() {
			t.Errorf("Heading %q has out-of-range page %d", h.Text, h.Page)
		}
	}
}

func TestOutlineDeterministic(t *testing.T) {
	first, _, err := FromSource(newFakeSource(reportPages())).Outline()
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, _, err := FromSource(newFakeSource(reportPages())).Outline()
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical input to produce identical outlines")
	}
}

func TestOpenMissingFile(t *testing.T) {
	outline, warnings, err := Open("testdata/does-not-exist.pdf").Outline()

	if !errors.Is(err, ErrUnsupportedDocument) {
		t.Errorf("Expected ErrUnsupportedDocument, got %v", err)
	}
	if outline == nil || outline.HeadingCount() != 0 {
		t.Error("Expected well-formed empty outline alongside the error")
	}
	if len(warnings) == 0 {
		t.Error("Expected an unsupported-document warning")
	}
}

func TestExtractorOptionsDoNotMutateOriginal(t *testing.T) {
	base := FromSource(newFakeSource(chapterPages()))
	limited := base.MaxPages(1)

	if base == limited {
		t.Fatal("Expected MaxPages to return a copy")
	}
	if base.options.maxPages != DefaultMaxPages {
		t.Errorf("Expected original maxPages unchanged, got %d", base.options.maxPages)
	}
	if limited.options.maxPages != 1 {
		t.Errorf("Expected copy maxPages=1, got %d", limited.options.maxPages)
	}
}

func TestMustOutline(t *testing.T) {
	outline := MustOutline(FromSource(newFakeSource(reportPages())).Outline())
	if outline.Title != "Annual Report" {
		t.Errorf("Expected title %q, got %q", "Annual Report", outline.Title)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MustOutline to panic on error")
		}
	}()
	MustOutline(Open("testdata/does-not-exist.pdf").Outline())
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Kind: WarnMalformedPage, Page: 2, Message: "bad stream"},
		{Kind: WarnResourceExceeded, Page: -1, Message: "too many pages"},
	}

	got := FormatWarnings(warnings)
	if !strings.Contains(got, "malformed page (page 2): bad stream") {
		t.Errorf("Unexpected formatting: %q", got)
	}
	if !strings.Contains(got, "resource exceeded: too many pages") {
		t.Errorf("Unexpected formatting: %q", got)
	}

	if FormatWarnings(nil) != "" {
		t.Error("Expected empty string for no warnings")
	}
}
