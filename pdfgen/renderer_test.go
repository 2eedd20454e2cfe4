package pdfgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func uncompressedRenderer() TableRenderer {
	cfg := DefaultConfig()
	cfg.Compress = false
	return TableRenderer{Config: cfg}
}

func TestTableRenderer_Scenario(t *testing.T) {
	buf := &bytes.Buffer{}
	rows := NewSliceIterator([][]any{
		{"Name", "Age"},
		{"Alice", "30"},
		{"Bob", "25"},
	})

	stats, err := uncompressedRenderer().Render(context.Background(), rows, buf, RenderOptions{User: "admin", Now: fixedNow})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Rows != 3 || stats.Total != 2 {
		t.Fatalf("expected 3 rows / 2 records, got %d / %d", stats.Rows, stats.Total)
	}
	if stats.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", stats.Pages)
	}
	if stats.Bytes != int64(buf.Len()) {
		t.Fatalf("expected %d bytes, got %d", buf.Len(), stats.Bytes)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected pdf header, got %q", out[:8])
	}
	footer := []byte("(Generated by admin on 2024-01-02 03:04:05. Total of records: 2) Tj")
	if !bytes.Contains(out, footer) {
		t.Fatalf("expected attribution line in content stream")
	}
	for _, cell := range []string{"(Name) Tj", "(Age) Tj", "(Alice) Tj", "(Bob) Tj", "(25) Tj"} {
		if !bytes.Contains(out, []byte(cell)) {
			t.Fatalf("expected cell %s", cell)
		}
	}
}

func TestTableRenderer_HeaderFill(t *testing.T) {
	buf := &bytes.Buffer{}
	rows := NewSliceIterator([][]any{{"h"}, {"v"}})
	if _, err := uncompressedRenderer().Render(context.Background(), rows, buf, RenderOptions{Now: fixedNow}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.Bytes()
	if !bytes.Contains(out, []byte("0.949 0.957 0.957 rg")) {
		t.Fatalf("expected light gray header fill")
	}
	// equal components are written with the gray operator
	if !bytes.Contains(out, []byte("1.000 g")) && !bytes.Contains(out, []byte("1.000 1.000 1.000 rg")) {
		t.Fatalf("expected white data fill")
	}
}

func pagedTable(records int) [][]any {
	data := [][]any{{"Name", "Amount"}}
	for i := 0; i < records; i++ {
		data = append(data, []any{fmt.Sprintf("row-%03d", i), i})
	}
	return data
}

func TestTableRenderer_HeaderDrawnOnceByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	stats, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator(pagedTable(200)), buf, RenderOptions{User: "admin", Now: fixedNow})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Pages < 2 {
		t.Fatalf("expected continuation pages, got %d", stats.Pages)
	}
	if got := bytes.Count(buf.Bytes(), []byte("(Name) Tj")); got != 1 {
		t.Fatalf("expected header once, got %d", got)
	}
}

func TestTableRenderer_PaginatesAndRepeatsHeader(t *testing.T) {
	data := pagedTable(200)
	r := uncompressedRenderer()
	r.Config.RepeatHeader = true

	buf := &bytes.Buffer{}
	stats, err := r.Render(context.Background(), NewSliceIterator(data), buf, RenderOptions{User: "admin", Now: fixedNow})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Total != 200 {
		t.Fatalf("expected 200 records, got %d", stats.Total)
	}
	if stats.Pages < 2 {
		t.Fatalf("expected continuation pages, got %d", stats.Pages)
	}
	if got := bytes.Count(buf.Bytes(), []byte("(Name) Tj")); got != stats.Pages {
		t.Fatalf("expected header on each of %d pages, got %d", stats.Pages, got)
	}

	footer := bytes.Index(buf.Bytes(), []byte("Total of records: 200) Tj"))
	lastPage := bytes.LastIndex(buf.Bytes(), []byte("<</Type /Page\n"))
	if footer < 0 || footer < lastPage {
		t.Fatalf("expected attribution line on the last page (footer=%d last page=%d)", footer, lastPage)
	}
}

func TestTableRenderer_AttributionPlacement(t *testing.T) {
	// 19.6pt rows from y=20 on a 595.28pt page: 29 rows end at 588.4, so the
	// footer no longer fits 20pt below them.
	cases := []struct {
		name    string
		records int
		pages   int
		td      string
	}{
		{name: "below last row", records: 27, pages: 1, td: "BT 50.00 6.48 Td (Generated by admin"},
		{name: "moved to new page", records: 28, pages: 2, td: "BT 50.00 555.28 Td (Generated by admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			stats, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator(pagedTable(tc.records)), buf, RenderOptions{User: "admin", Now: fixedNow})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if stats.Pages != tc.pages {
				t.Fatalf("expected %d pages, got %d", tc.pages, stats.Pages)
			}
			footer := bytes.Index(buf.Bytes(), []byte(tc.td))
			if footer < 0 {
				t.Fatalf("expected %q in content stream", tc.td)
			}
			if lastPage := bytes.LastIndex(buf.Bytes(), []byte("<</Type /Page\n")); footer < lastPage {
				t.Fatalf("expected attribution on the last page")
			}
		})
	}
}

func TestTableRenderer_RejectsUnencodableText(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{{"Name"}, {"Ana"}}), buf, RenderOptions{User: "Zoë 李", Now: fixedNow})
	if KindFromError(err) != KindLayout {
		t.Fatalf("expected layout error for user, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %d bytes", buf.Len())
	}

	_, err = uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{{"Name"}, {"李"}}), &bytes.Buffer{}, RenderOptions{User: "admin", Now: fixedNow})
	if KindFromError(err) != KindLayout {
		t.Fatalf("expected layout error for cell, got %v", err)
	}
}

func TestTableRenderer_UserPassedThroughInCp1252(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{{"Name"}}), buf, RenderOptions{User: "Zoë Müller", Now: fixedNow})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("(Generated by Zo\xeb M\xfcller on 2024-01-02 03:04:05.")) {
		t.Fatalf("expected cp1252 encoded user in attribution line")
	}
}

func TestTableRenderer_EmptyInput(t *testing.T) {
	buf := &bytes.Buffer{}
	stats, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator(nil), buf, RenderOptions{User: "admin", Now: fixedNow})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if stats.Total != -1 {
		t.Fatalf("expected -1 records, got %d", stats.Total)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Total of records: -1) Tj")) {
		t.Fatalf("expected attribution line")
	}
}

func TestTableRenderer_RaggedRows(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{
		{"a", "b", "c"},
		{"1"},
	}), buf, RenderOptions{Now: fixedNow})
	if err != nil {
		t.Fatalf("short rows should be padded: %v", err)
	}

	_, err = uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{
		{"a"},
		{"1", "2"},
	}), &bytes.Buffer{}, RenderOptions{Now: fixedNow})
	if KindFromError(err) != KindLayout {
		t.Fatalf("expected layout error, got %v", err)
	}
}

func TestTableRenderer_EmptyHeader(t *testing.T) {
	_, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{{}}), &bytes.Buffer{}, RenderOptions{Now: fixedNow})
	if KindFromError(err) != KindLayout {
		t.Fatalf("expected layout error, got %v", err)
	}
}

func TestTableRenderer_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uncompressedRenderer().Render(ctx, NewSliceIterator([][]any{{"a"}}), &bytes.Buffer{}, RenderOptions{})
	if KindFromError(err) != KindCanceled {
		t.Fatalf("expected canceled, got %v", err)
	}
}

type failingIterator struct{}

func (failingIterator) Next(context.Context) (Row, error) { return nil, errors.New("source broken") }
func (failingIterator) Close() error                      { return nil }

func TestTableRenderer_IteratorError(t *testing.T) {
	_, err := uncompressedRenderer().Render(context.Background(), failingIterator{}, &bytes.Buffer{}, RenderOptions{})
	if err == nil || err.Error() != "source broken" {
		t.Fatalf("expected iterator error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestTableRenderer_WriteError(t *testing.T) {
	_, err := uncompressedRenderer().Render(context.Background(), NewSliceIterator([][]any{{"a"}}), failingWriter{}, RenderOptions{})
	if KindFromError(err) != KindIO {
		t.Fatalf("expected io error, got %v", err)
	}
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestTableRenderer_Validation(t *testing.T) {
	r := uncompressedRenderer()
	if _, err := r.Render(context.Background(), nil, &bytes.Buffer{}, RenderOptions{}); KindFromError(err) != KindValidation {
		t.Fatalf("expected validation error for nil rows, got %v", err)
	}
	if _, err := r.Render(context.Background(), NewSliceIterator(nil), nil, RenderOptions{}); KindFromError(err) != KindValidation {
		t.Fatalf("expected validation error for nil writer, got %v", err)
	}
	r.Config.PageSize = "B9"
	if _, err := r.Render(context.Background(), NewSliceIterator(nil), &bytes.Buffer{}, RenderOptions{}); KindFromError(err) != KindValidation {
		t.Fatalf("expected validation error for bad config, got %v", err)
	}
}
