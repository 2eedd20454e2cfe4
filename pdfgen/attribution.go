package pdfgen

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"github.com/ncruces/go-strftime"
)

// FormatTimestamp renders t with the configured date-time format and locale.
func (c Config) FormatTimestamp(t time.Time) (string, error) {
	layout, err := strftime.Layout(c.dateTimeFormat())
	if err != nil {
		return "", NewError(KindValidation, fmt.Sprintf("invalid date-time format %q", c.DateTimeFormat), err)
	}
	if c.Locale == "" {
		return t.Format(layout), nil
	}
	return monday.Format(t, layout, monday.Locale(c.Locale)), nil
}

// Attribution builds the trailing line printed below the table. user is used
// verbatim.
func (c Config) Attribution(user string, now time.Time, total int) (string, error) {
	stamp, err := c.FormatTimestamp(now)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Generated by %s on %s. Total of records: %d", user, stamp, total), nil
}
