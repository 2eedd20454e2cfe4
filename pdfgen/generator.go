package pdfgen

import (
	"context"
	"time"
)

// Generator renders tables into PDF files on disk. A Generator keeps no
// per-call state and may be shared; two calls writing the same destination
// race on the final file.
type Generator struct {
	Renderer TableRenderer
	Now      func() time.Time
	// Filename names the output when no destination is given.
	Filename func() (string, error)
}

// NewGenerator creates a generator using cfg for every document.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		Renderer: TableRenderer{Config: cfg},
		Now:      time.Now,
		Filename: RandomFilename,
	}
}

var defaultGenerator = NewGenerator(DefaultConfig())

// FromList renders data with the default configuration. See Generator.FromList.
func FromList(data [][]any, destination, user string) (RenderedFile, error) {
	return defaultGenerator.FromList(data, destination, user)
}

// FromList writes data as a landscape table to destination, or to a random
// "<base32>.pdf" in the working directory when destination is empty, and
// appends "Generated by <user> on <time>. Total of records: <len(data)-1>".
func (g *Generator) FromList(data [][]any, destination, user string) (RenderedFile, error) {
	return g.Generate(context.Background(), RenderRequest{
		Data:        data,
		Destination: destination,
		User:        user,
	})
}

// Generate renders req and persists it before returning. Failures to create
// or write the file are KindIO errors; a partially written file is left in
// place.
func (g *Generator) Generate(ctx context.Context, req RenderRequest) (RenderedFile, error) {
	if g == nil {
		return RenderedFile{}, NewError(KindInternal, "generator is nil", nil)
	}

	path := req.Destination
	if path == "" {
		name, err := g.filename()
		if err != nil {
			return RenderedFile{}, err
		}
		path = name
	}

	rows := NewSliceIterator(req.Data)
	defer rows.Close()

	out := &lazyFile{path: path}
	defer out.Close()

	stats, err := g.Renderer.Render(ctx, rows, out, RenderOptions{
		User: req.User,
		Now:  g.now(),
	})
	if err != nil {
		return RenderedFile{}, err
	}
	if err := out.Close(); err != nil {
		return RenderedFile{}, NewError(KindIO, "close pdf file", err)
	}

	return RenderedFile{
		Path:  path,
		Total: stats.Total,
		Pages: stats.Pages,
		Bytes: stats.Bytes,
	}, nil
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func (g *Generator) filename() (string, error) {
	if g.Filename == nil {
		return RandomFilename()
	}
	return g.Filename()
}
