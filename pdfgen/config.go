package pdfgen

import (
	"fmt"
	"strings"

	"github.com/goodsign/monday"
	"github.com/ncruces/go-strftime"
)

// DefaultDateTimeFormat is the strftime pattern used for the attribution timestamp.
const DefaultDateTimeFormat = "%Y-%m-%d %H:%M:%S"

// RGB is a color with 0-255 components.
type RGB [3]int

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
	// LightGray is the header fill.
	LightGray = RGB{242, 244, 244}
)

// Config holds PDF layout settings. Values are in points.
type Config struct {
	PageSize  string
	Landscape bool

	// Margin is the horizontal table margin. The table starts 2*Margin below
	// the top edge of every page.
	Margin       float64
	BottomMargin float64

	FontFamily   string
	CellFontSize float64
	CellPadding  float64
	LineSpacing  float64
	BorderWidth  float64
	BorderColor  RGB
	TextColor    RGB
	HeaderFill   RGB
	EvenFill     RGB
	OddFill      RGB
	// RepeatHeader redraws row 0 at the top of every continuation page.
	RepeatHeader bool

	FooterLeft     float64
	FooterGap      float64
	FooterFontSize float64
	FooterColor    RGB

	// DateTimeFormat is a strftime pattern, e.g. "%d/%m/%Y %H:%M".
	DateTimeFormat string
	// Locale renders month and weekday names (e.g. "es_ES"). Empty keeps English.
	Locale string

	Creator  string
	Compress bool
}

// DefaultConfig returns a landscape A4 layout with a light gray header.
func DefaultConfig() Config {
	return Config{
		PageSize:       "A4",
		Landscape:      true,
		Margin:         10,
		BottomMargin:   0,
		FontFamily:     "Helvetica",
		CellFontSize:   8,
		CellPadding:    5,
		LineSpacing:    1.2,
		BorderWidth:    0.5,
		BorderColor:    Black,
		TextColor:      Black,
		HeaderFill:     LightGray,
		EvenFill:       White,
		OddFill:        White,
		RepeatHeader:   false,
		FooterLeft:     50,
		FooterGap:      20,
		FooterFontSize: 8,
		FooterColor:    Black,
		DateTimeFormat: DefaultDateTimeFormat,
		Creator:        "joko-utils",
		Compress:       true,
	}
}

var pageSizes = map[string]string{
	"A3":      "A3",
	"A4":      "A4",
	"A5":      "A5",
	"LETTER":  "Letter",
	"LEGAL":   "Legal",
	"TABLOID": "Tabloid",
}

var coreFonts = map[string]struct{}{
	"helvetica": {},
	"arial":     {},
	"times":     {},
	"courier":   {},
}

// Validate reports invalid settings as KindValidation errors.
func (c Config) Validate() error {
	if _, ok := pageSizes[strings.ToUpper(strings.TrimSpace(c.PageSize))]; !ok {
		return NewError(KindValidation, fmt.Sprintf("unsupported page size: %s", c.PageSize), nil)
	}
	if _, ok := coreFonts[strings.ToLower(c.FontFamily)]; !ok {
		return NewError(KindValidation, fmt.Sprintf("core font family required, got %q", c.FontFamily), nil)
	}
	if c.CellFontSize <= 0 || c.FooterFontSize <= 0 || c.LineSpacing <= 0 {
		return NewError(KindValidation, "font sizes and line spacing must be positive", nil)
	}
	if c.Margin < 0 || c.BottomMargin < 0 || c.CellPadding < 0 || c.BorderWidth < 0 {
		return NewError(KindValidation, "margins, padding and border width must not be negative", nil)
	}
	for _, color := range []RGB{c.BorderColor, c.TextColor, c.HeaderFill, c.EvenFill, c.OddFill, c.FooterColor} {
		for _, v := range color {
			if v < 0 || v > 255 {
				return NewError(KindValidation, fmt.Sprintf("color component out of range: %v", color), nil)
			}
		}
	}
	if _, err := strftime.Layout(c.dateTimeFormat()); err != nil {
		return NewError(KindValidation, fmt.Sprintf("invalid date-time format %q", c.DateTimeFormat), err)
	}
	if c.Locale != "" && !knownLocale(c.Locale) {
		return NewError(KindValidation, fmt.Sprintf("unsupported locale %q", c.Locale), nil)
	}
	return nil
}

func (c Config) orientation() string {
	if c.Landscape {
		return "L"
	}
	return "P"
}

func (c Config) pageSize() string {
	if size, ok := pageSizes[strings.ToUpper(strings.TrimSpace(c.PageSize))]; ok {
		return size
	}
	return c.PageSize
}

func (c Config) dateTimeFormat() string {
	if c.DateTimeFormat == "" {
		return DefaultDateTimeFormat
	}
	return c.DateTimeFormat
}

func knownLocale(locale string) bool {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return true
		}
	}
	return false
}
