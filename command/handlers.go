package command

import (
	"context"

	"github.com/fintechservicios/joko-utils/pdfgen"
	"github.com/fintechservicios/joko-utils/sources/tabular"
	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"
)

// Generator renders a request into a PDF file.
type Generator interface {
	Generate(ctx context.Context, req pdfgen.RenderRequest) (pdfgen.RenderedFile, error)
}

// GenerateTablePDFHandler handles GenerateTablePDF messages.
type GenerateTablePDFHandler struct {
	Generator Generator
	Logger    pdfgen.Logger
}

func NewGenerateTablePDFHandler(gen Generator) *GenerateTablePDFHandler {
	return &GenerateTablePDFHandler{Generator: gen, Logger: pdfgen.NopLogger{}}
}

func (h *GenerateTablePDFHandler) Execute(ctx context.Context, msg GenerateTablePDF) error {
	if h == nil || h.Generator == nil {
		return errors.New("pdf generator is required", errors.CategoryInternal).
			WithTextCode("GENERATOR_REQUIRED")
	}
	file, err := generate(ctx, h.Generator, logger(h.Logger), pdfgen.RenderRequest{
		Data:        msg.Data,
		Destination: msg.Destination,
		User:        msg.User,
	})
	if err != nil {
		return err
	}
	storeResult(ctx, msg.Result, file)
	return nil
}

// GenerateTablePDFFromFileHandler handles GenerateTablePDFFromFile messages.
type GenerateTablePDFFromFileHandler struct {
	Generator Generator
	Logger    pdfgen.Logger
	Load      func(path string, opts tabular.Options) ([][]any, error)
}

func NewGenerateTablePDFFromFileHandler(gen Generator) *GenerateTablePDFFromFileHandler {
	return &GenerateTablePDFFromFileHandler{Generator: gen, Logger: pdfgen.NopLogger{}, Load: tabular.LoadFile}
}

func (h *GenerateTablePDFFromFileHandler) Execute(ctx context.Context, msg GenerateTablePDFFromFile) error {
	if h == nil || h.Generator == nil {
		return errors.New("pdf generator is required", errors.CategoryInternal).
			WithTextCode("GENERATOR_REQUIRED")
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	load := h.Load
	if load == nil {
		load = tabular.LoadFile
	}

	log := logger(h.Logger)
	data, err := load(msg.Input, msg.Source)
	if err != nil {
		log.Errorf("load table %s: %v", msg.Input, err)
		return pdfgen.AsGoError(err)
	}
	log.Debugf("loaded %d rows from %s", len(data), msg.Input)

	file, err := generate(ctx, h.Generator, log, pdfgen.RenderRequest{
		Data:        data,
		Destination: msg.Destination,
		User:        msg.User,
	})
	if err != nil {
		return err
	}
	storeResult(ctx, msg.Result, file)
	return nil
}

func generate(ctx context.Context, gen Generator, log pdfgen.Logger, req pdfgen.RenderRequest) (pdfgen.RenderedFile, error) {
	file, err := gen.Generate(ctx, req)
	if err != nil {
		log.Errorf("generate pdf: %v", err)
		return pdfgen.RenderedFile{}, pdfgen.AsGoError(err)
	}
	log.Infof("generated %s pages=%d records=%d bytes=%d", file.Path, file.Pages, file.Total, file.Bytes)
	return file, nil
}

func storeResult(ctx context.Context, dst *pdfgen.RenderedFile, file pdfgen.RenderedFile) {
	if dst != nil {
		*dst = file
	}
	if res := gcmd.ResultFromContext[pdfgen.RenderedFile](ctx); res != nil {
		res.Store(file)
	}
}

func logger(l pdfgen.Logger) pdfgen.Logger {
	if l == nil {
		return pdfgen.NopLogger{}
	}
	return l
}
