package pdfgen

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// tableLayout draws rows top to bottom, adding continuation pages as needed.
type tableLayout struct {
	pdf        *fpdf.Fpdf
	cfg        Config
	encode     func(string) (string, error)
	left       float64
	width      float64
	top        float64
	bottom     float64
	pageHeight float64
	colWidth   float64
	lineHeight float64
	y          float64
	header     []string
	dataRows   int
}

func newTableLayout(pdf *fpdf.Fpdf, cfg Config) *tableLayout {
	pageWidth, pageHeight := pdf.GetPageSize()
	top := 2 * cfg.Margin
	return &tableLayout{
		pdf:        pdf,
		cfg:        cfg,
		encode:     strictEncoder(pdf.UnicodeTranslatorFromDescriptor("")),
		left:       cfg.Margin,
		top:        top,
		bottom:     pageHeight - cfg.BottomMargin,
		pageHeight: pageHeight,
		width:      pageWidth - 2*cfg.Margin,
		lineHeight: cfg.CellFontSize * cfg.LineSpacing,
		y:          top,
	}
}

// addRow draws one row. The first row becomes the header and fixes the
// column count.
func (t *tableLayout) addRow(row Row) error {
	cells := make([]string, len(row))
	for i, value := range row {
		cell, err := t.encode(stringify(value))
		if err != nil {
			return err
		}
		cells[i] = cell
	}

	if t.header == nil {
		if len(cells) == 0 {
			return NewError(KindLayout, "header row has no cells", nil)
		}
		t.colWidth = t.width / float64(len(cells))
		t.header = cells
		t.drawRow(cells, t.cfg.HeaderFill, true)
		return t.err()
	}

	if len(cells) > len(t.header) {
		return NewError(KindLayout, fmt.Sprintf("row %d has %d cells, header has %d", t.dataRows+1, len(cells), len(t.header)), nil)
	}
	for len(cells) < len(t.header) {
		cells = append(cells, "")
	}

	t.dataRows++
	fill := t.cfg.OddFill
	if t.dataRows%2 == 0 {
		fill = t.cfg.EvenFill
	}
	t.drawRow(cells, fill, false)
	return t.err()
}

func (t *tableLayout) drawRow(cells []string, fill RGB, header bool) {
	style := ""
	if header {
		style = "B"
	}
	t.pdf.SetFont(t.cfg.FontFamily, style, t.cfg.CellFontSize)

	padding := t.cfg.CellPadding
	inner := t.colWidth - 2*padding
	wrapped := make([][]string, len(cells))
	lines := 1
	for i, cell := range cells {
		wrapped[i] = wrapText(t.pdf, cell, inner)
		if len(wrapped[i]) > lines {
			lines = len(wrapped[i])
		}
	}
	height := float64(lines)*t.lineHeight + 2*padding

	if t.y+height > t.bottom && t.y > t.top {
		t.pdf.AddPage()
		t.y = t.top
		if !header && t.cfg.RepeatHeader {
			t.drawRow(t.header, t.cfg.HeaderFill, true)
			t.pdf.SetFont(t.cfg.FontFamily, style, t.cfg.CellFontSize)
		}
	}

	t.pdf.SetLineWidth(t.cfg.BorderWidth)
	t.pdf.SetDrawColor(t.cfg.BorderColor[0], t.cfg.BorderColor[1], t.cfg.BorderColor[2])
	t.pdf.SetFillColor(fill[0], fill[1], fill[2])
	t.pdf.SetTextColor(t.cfg.TextColor[0], t.cfg.TextColor[1], t.cfg.TextColor[2])

	baseline := padding + 0.5*t.lineHeight + 0.3*t.cfg.CellFontSize
	for i, cellLines := range wrapped {
		x := t.left + float64(i)*t.colWidth
		t.pdf.Rect(x, t.y, t.colWidth, height, "FD")
		for j, line := range cellLines {
			if line == "" {
				continue
			}
			t.pdf.Text(x+padding, t.y+baseline+float64(j)*t.lineHeight, line)
		}
	}
	t.y += height
}

// drawAttribution writes text FooterGap below the last row. When that falls
// off the page the line moves to the top of a new page.
func (t *tableLayout) drawAttribution(text string) error {
	encoded, err := t.encode(text)
	if err != nil {
		return err
	}
	y := t.y + t.cfg.FooterGap
	if y > t.pageHeight {
		t.pdf.AddPage()
		y = t.top + t.cfg.FooterGap
	}
	t.pdf.SetFont(t.cfg.FontFamily, "", t.cfg.FooterFontSize)
	t.pdf.SetTextColor(t.cfg.FooterColor[0], t.cfg.FooterColor[1], t.cfg.FooterColor[2])
	t.pdf.Text(t.cfg.FooterLeft, y, encoded)
	return t.err()
}

// strictEncoder wraps an fpdf code page translator. The translator writes '.'
// for runes missing from the code page; those are reported instead.
func strictEncoder(translate func(string) string) func(string) (string, error) {
	return func(text string) (string, error) {
		for _, r := range text {
			if r < 0x80 {
				continue
			}
			if translate(string(r)) == "." {
				return "", NewError(KindLayout, fmt.Sprintf("text not encodable in core font: %q", r), nil)
			}
		}
		return translate(text), nil
	}
}

func (t *tableLayout) err() error {
	if err := t.pdf.Error(); err != nil {
		return NewError(KindLayout, "pdf layout failed", err)
	}
	return nil
}

// wrapText splits single-byte encoded text into lines no wider than width.
// Words wider than a line are broken between characters.
func wrapText(pdf *fpdf.Fpdf, text string, width float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if pdf.GetStringWidth(candidate) <= width {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			for len(word) > 1 && pdf.GetStringWidth(word) > width {
				cut := fitPrefix(pdf, word, width)
				lines = append(lines, word[:cut])
				word = word[cut:]
			}
			current = word
		}
		lines = append(lines, current)
	}
	return lines
}

func fitPrefix(pdf *fpdf.Fpdf, word string, width float64) int {
	n := 1
	for n < len(word) && pdf.GetStringWidth(word[:n+1]) <= width {
		n++
	}
	return n
}
