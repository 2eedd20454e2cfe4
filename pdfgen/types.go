package pdfgen

import (
	"context"
	"io"
	"time"
)

// Row is an ordered list of cell values. Cells are displayed with fmt.Sprint.
type Row []any

// RowIterator streams rows. Next returns io.EOF after the last row.
type RowIterator interface {
	Next(ctx context.Context) (Row, error)
	Close() error
}

// SliceIterator iterates over an in-memory table.
type SliceIterator struct {
	rows [][]any
	idx  int
}

// NewSliceIterator wraps rows in a RowIterator.
func NewSliceIterator(rows [][]any) *SliceIterator {
	return &SliceIterator{rows: rows}
}

func (it *SliceIterator) Next(ctx context.Context) (Row, error) {
	_ = ctx
	if it.idx >= len(it.rows) {
		return nil, io.EOF
	}
	row := it.rows[it.idx]
	it.idx++
	return Row(row), nil
}

func (it *SliceIterator) Close() error { return nil }

// RenderOptions configures a single render.
type RenderOptions struct {
	// User is printed verbatim in the attribution line.
	User string
	// Now is the attribution timestamp. Zero means time.Now.
	Now time.Time
}

// RenderStats capture renderer output.
type RenderStats struct {
	Rows  int64
	Total int64
	Pages int
	Bytes int64
}

// RenderRequest captures a file render.
type RenderRequest struct {
	Data [][]any
	// Destination is used verbatim. Empty generates a random name in the
	// working directory.
	Destination string
	User        string
}

// RenderedFile references a PDF persisted on disk.
type RenderedFile struct {
	Path  string
	Total int64
	Pages int
	Bytes int64
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
