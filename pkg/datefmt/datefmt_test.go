package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndonesian(t *testing.T) {
	ts := time.Date(2026, time.August, 2, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "02 Agu 2026 14:05", Format(ts, "id-ID", PrecisionDateTime))
	assert.Equal(t, "14:05", Format(ts, "id-ID", PrecisionTimeOnly))
}

func TestFormatIndonesianMonths(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Jan"},
		{time.May, "Mei"},
		{time.August, "Agu"},
		{time.October, "Okt"},
		{time.December, "Des"},
	}

	for _, tc := range cases {
		ts := time.Date(2026, tc.month, 15, 9, 30, 0, 0, time.UTC)
		assert.Contains(t, Format(ts, "id-ID", PrecisionDateTime), tc.want)
	}
}

func TestFormatEnglish(t *testing.T) {
	ts := time.Date(2026, time.August, 2, 14, 5, 0, 0, time.UTC)

	assert.Equal(t, "Aug 02, 2026 2:05 PM", Format(ts, "en-US", PrecisionDateTime))
	assert.Equal(t, "2:05 PM", Format(ts, "en-US", PrecisionTimeOnly))
	assert.Equal(t, "Aug 02, 2026 2:05 PM", Format(ts, "en-KE", PrecisionDateTime))
}

func TestFormatUnknownLocaleFallsBack(t *testing.T) {
	ts := time.Date(2026, time.March, 9, 7, 45, 0, 0, time.UTC)
	assert.Equal(t, "09 Mar 2026 07:45", Format(ts, "fr-FR", PrecisionDateTime))
}
