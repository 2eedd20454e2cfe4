package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/fintechservicios/joko-utils/pdfgen"
)

// CSVIterator streams CSV records as rows. Records may have different
// lengths; the renderer pads or rejects them against the header.
type CSVIterator struct {
	reader  *csv.Reader
	records int
	closed  bool
}

// NewCSVIterator reads r with delimiter, or ',' when delimiter is 0.
func NewCSVIterator(r io.Reader, delimiter rune) *CSVIterator {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	return &CSVIterator{reader: reader}
}

// Next returns the next record, or io.EOF once input is exhausted or the
// iterator was closed.
func (it *CSVIterator) Next(ctx context.Context) (pdfgen.Row, error) {
	if it.closed {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record, err := it.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, pdfgen.NewError(pdfgen.KindValidation, fmt.Sprintf("read csv record %d", it.records+1), err)
	}
	it.records++

	row := make(pdfgen.Row, len(record))
	for i, field := range record {
		row[i] = field
	}
	return row, nil
}

// Records reports how many records were read so far, header included.
func (it *CSVIterator) Records() int {
	return it.records
}

func (it *CSVIterator) Close() error {
	it.closed = true
	return nil
}

// Collect drains rows into a table.
func Collect(ctx context.Context, rows pdfgen.RowIterator) ([][]any, error) {
	var table [][]any
	for {
		row, err := rows.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return table, nil
			}
			return nil, err
		}
		table = append(table, []any(row))
	}
}
