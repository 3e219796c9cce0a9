package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{in: " 2024-03-15 ", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2024-03-15T08:30:00", want: time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), ok: true},
		{in: "2024/03/15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "", ok: false},
		{in: "March 2024", ok: false},
		{in: "2024-13-01", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}

func TestFormatDateLocalized(t *testing.T) {
	assert.Equal(t, "15 mars 2024", FormatDateLocalized("2024-03-15", "fr_FR"))
	assert.Equal(t, "1 août 2023", FormatDateLocalized("2023-08-01", "fr_FR"))
	assert.Equal(t, "15 March 2024", FormatDateLocalized("2024-03-15", "en_US"))
	assert.Equal(t, "Spring 2024", FormatDateLocalized("Spring 2024", "fr_FR"))
	assert.Equal(t, "", FormatDateLocalized("", "fr_FR"))
}
