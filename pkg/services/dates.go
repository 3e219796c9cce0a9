package services

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Epoch is the last-resort date for a publication with no usable date.
var Epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

const (
	isoDateLayout       = "2006-01-02"
	localizedDateLayout = "2 January 2006"
)

// ParseDate accepts the date forms found in front matter. ok is false for
// empty or unrecognised values.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatDateLocalized renders raw as "day month year" with month names of
// locale. Values ParseDate rejects are returned unchanged.
func FormatDateLocalized(raw string, locale monday.Locale) string {
	if raw == "" {
		return ""
	}
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return monday.Format(t, localizedDateLayout, locale)
}
