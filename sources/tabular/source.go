// Package tabular loads tables from CSV, JSON and XLSX files for the PDF
// generator. Loaded tables keep the file's first row as the header row.
package tabular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fintechservicios/joko-utils/pdfgen"
	"github.com/xuri/excelize/v2"
)

// Format identifies an input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Options configures file loading.
type Options struct {
	// Format overrides detection by file extension.
	Format Format
	// Delimiter is the CSV field separator. Zero means ','.
	Delimiter rune
	// Sheet selects the XLSX worksheet. Empty means the first sheet.
	Sheet string
}

// NormalizeFormat coerces format aliases.
func NormalizeFormat(format Format) Format {
	switch strings.ToLower(strings.TrimSpace(string(format))) {
	case "csv", "tsv", "txt":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xlsx", "excel", "xlsm":
		return FormatXLSX
	default:
		return Format(strings.ToLower(strings.TrimSpace(string(format))))
	}
}

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) Format {
	return NormalizeFormat(Format(strings.TrimPrefix(filepath.Ext(path), ".")))
}

// LoadFile reads a whole table from path.
func LoadFile(path string, opts Options) ([][]any, error) {
	format := NormalizeFormat(opts.Format)
	if format == "" {
		format = DetectFormat(path)
	}

	switch format {
	case FormatXLSX:
		return LoadXLSX(path, opts.Sheet)
	case FormatCSV, FormatJSON:
	default:
		return nil, pdfgen.NewError(pdfgen.KindValidation, fmt.Sprintf("unsupported input format %q", format), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pdfgen.NewError(pdfgen.KindIO, "open input", err)
	}
	defer file.Close()

	delimiter := opts.Delimiter
	if delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		delimiter = '\t'
	}
	if format == FormatJSON {
		return LoadJSON(file)
	}
	return LoadCSV(file, delimiter)
}

// LoadCSV reads every record. Records may have different lengths.
func LoadCSV(r io.Reader, delimiter rune) ([][]any, error) {
	iter := NewCSVIterator(r, delimiter)
	defer iter.Close()
	return Collect(context.Background(), iter)
}

// LoadJSON reads a JSON array of arrays. Numbers keep their literal text.
func LoadJSON(r io.Reader) ([][]any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var raw [][]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, pdfgen.NewError(pdfgen.KindValidation, "decode json table", err)
	}
	return raw, nil
}

// LoadXLSX reads the formatted cell values of a worksheet.
func LoadXLSX(path, sheet string) ([][]any, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pdfgen.NewError(pdfgen.KindIO, "open workbook", err)
	}
	defer file.Close()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}
	if idx, err := file.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, pdfgen.NewError(pdfgen.KindValidation, fmt.Sprintf("sheet %q not found", sheet), err)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, pdfgen.NewError(pdfgen.KindValidation, fmt.Sprintf("read sheet %q", sheet), err)
	}

	table := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, value := range row {
			cells[j] = value
		}
		table[i] = cells
	}
	return table, nil
}
