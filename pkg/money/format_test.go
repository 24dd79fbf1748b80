package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrencyIndonesian(t *testing.T) {
	cases := []struct {
		amount Money
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{17000, "Rp17.000"},
		{1250000, "Rp1.250.000"},
		{1000000000, "Rp1.000.000.000"},
	}

	for _, tc := range cases {
		got, err := FormatCurrency(tc.amount, "id-ID")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatCurrencyUSDollar(t *testing.T) {
	got, err := FormatCurrency(123456789, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$1,234,567.89", got)

	got, err = FormatCurrency(5, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$0.05", got)
}

func TestFormatCurrencyKenyanShilling(t *testing.T) {
	got, err := FormatCurrency(250000, "en-KE")
	require.NoError(t, err)
	assert.Equal(t, "KSh 2,500.00", got)
}

func TestFormatCurrencyUnknownLocaleFallsBack(t *testing.T) {
	got, err := FormatCurrency(17000, "xx-XX")
	require.NoError(t, err)
	assert.Equal(t, "Rp17.000", got)
}

func TestFormatCurrencyNegative(t *testing.T) {
	_, err := FormatCurrency(-1, "id-ID")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
