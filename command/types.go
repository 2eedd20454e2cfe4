package command

import (
	"github.com/fintechservicios/joko-utils/pdfgen"
	"github.com/fintechservicios/joko-utils/sources/tabular"
	"github.com/goliatone/go-errors"
)

// GenerateTablePDF renders in-memory rows into a PDF file.
type GenerateTablePDF struct {
	Data        [][]any
	Destination string
	User        string
	Result      *pdfgen.RenderedFile
}

func (GenerateTablePDF) Type() string { return "pdf:table" }

// Validate accepts any input; rows and user are handed to the layout engine
// as given.
func (GenerateTablePDF) Validate() error { return nil }

// GenerateTablePDFFromFile loads a CSV, JSON or XLSX table and renders it.
type GenerateTablePDFFromFile struct {
	Input       string
	Source      tabular.Options
	Destination string
	User        string
	Result      *pdfgen.RenderedFile
}

func (GenerateTablePDFFromFile) Type() string { return "pdf:table:file" }

func (msg GenerateTablePDFFromFile) Validate() error {
	if msg.Input == "" {
		return errors.New("input path is required", errors.CategoryValidation).
			WithTextCode("INPUT_REQUIRED")
	}
	return nil
}
