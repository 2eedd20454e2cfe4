package pdfgen

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// TableRenderer draws a table followed by the attribution line and writes the
// finished PDF to an io.Writer.
type TableRenderer struct {
	Config Config
}

// Render consumes rows in one pass. The first row is the header; Total in the
// returned stats is the row count minus one.
func (r TableRenderer) Render(ctx context.Context, rows RowIterator, w io.Writer, opts RenderOptions) (RenderStats, error) {
	if rows == nil {
		return RenderStats{}, NewError(KindValidation, "row iterator is required", nil)
	}
	if w == nil {
		return RenderStats{}, NewError(KindValidation, "output writer is required", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return RenderStats{}, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	pdf := newDocument(cfg, now)
	layout := newTableLayout(pdf, cfg)

	stats := RenderStats{}
	for {
		if err := ctx.Err(); err != nil {
			return stats, contextError(err)
		}

		row, err := rows.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return stats, err
		}
		if err := layout.addRow(row); err != nil {
			return stats, err
		}
		stats.Rows++
	}
	stats.Total = stats.Rows - 1

	text, err := cfg.Attribution(opts.User, now, int(stats.Total))
	if err != nil {
		return stats, err
	}
	if err := layout.drawAttribution(text); err != nil {
		return stats, err
	}

	pdf.Close()
	if err := pdf.Error(); err != nil {
		return stats, NewError(KindLayout, "pdf layout failed", err)
	}
	stats.Pages = pdf.PageCount()

	cw := &countingWriter{w: w}
	if err := pdf.Output(cw); err != nil {
		stats.Bytes = cw.count
		return stats, NewError(KindIO, "write pdf", err)
	}
	stats.Bytes = cw.count
	return stats, nil
}

func newDocument(cfg Config, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New(cfg.orientation(), "pt", cfg.pageSize(), "")
	pdf.SetCompression(cfg.Compress)
	pdf.SetCreationDate(now)
	if cfg.Creator != "" {
		pdf.SetCreator(cfg.Creator, true)
	}
	pdf.SetMargins(cfg.Margin, 2*cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.BottomMargin)
	pdf.AddPage()
	return pdf
}
