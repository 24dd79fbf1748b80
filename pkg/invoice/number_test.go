package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumberDefaultTemplate(t *testing.T) {
	issuedAt := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	got, err := FormatNumber(DefaultTemplate, issuedAt, 42)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260831-0042", got)
}

func TestFormatNumberTokens(t *testing.T) {
	issuedAt := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		template string
		seq      int64
		want     string
	}{
		{"{YY}{MM}{DD}/{SEQ}", 7, "260105/7"},
		{"NOTA-{SEQ6}", 123, "NOTA-000123"},
		{"{YYYY}-{SEQ2}", 100, "2026-100"}, // sequence wider than padding
	}

	for _, tc := range cases {
		got, err := FormatNumber(tc.template, issuedAt, tc.seq)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatNumberErrors(t *testing.T) {
	issuedAt := time.Now()

	_, err := FormatNumber("", issuedAt, 1)
	assert.Error(t, err)

	_, err = FormatNumber(DefaultTemplate, issuedAt, 0)
	assert.Error(t, err)

	_, err = FormatNumber("INV-{BOGUS}", issuedAt, 1)
	assert.Error(t, err)
}
