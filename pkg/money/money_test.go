package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRollup(t *testing.T) {
	items := []LineItem{
		{ProductName: "Kopi Sachet", Quantity: 2, UnitPrice: 1500},
		{ProductName: "Indomie Goreng", Quantity: 4, UnitPrice: 3500},
	}

	rollup, err := ComputeRollup(items, 2000, 0.11)
	require.NoError(t, err)

	assert.Equal(t, Money(17000), rollup.Subtotal)
	assert.Equal(t, Money(2000), rollup.Discount)
	assert.Equal(t, Money(1650), rollup.Tax) // 11% of 15000
	assert.Equal(t, Money(16650), rollup.Total)
}

func TestComputeRollupInvariant(t *testing.T) {
	cases := []struct {
		name     string
		items    []LineItem
		discount Money
		taxRate  float64
	}{
		{"no discount no tax", []LineItem{{ProductName: "A", Quantity: 1, UnitPrice: 100}}, 0, 0},
		{"full discount", []LineItem{{ProductName: "A", Quantity: 3, UnitPrice: 500}}, 1500, 0.1},
		{"fractional tax", []LineItem{{ProductName: "A", Quantity: 7, UnitPrice: 999}}, 123, 0.0825},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rollup, err := ComputeRollup(tc.items, tc.discount, tc.taxRate)
			require.NoError(t, err)
			assert.Equal(t, rollup.Subtotal-rollup.Discount+rollup.Tax, rollup.Total)
		})
	}
}

func TestComputeRollupRoundsHalfUp(t *testing.T) {
	// base 150 * 5% = 7.5, which must round up to 8
	items := []LineItem{{ProductName: "A", Quantity: 1, UnitPrice: 150}}
	rollup, err := ComputeRollup(items, 0, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Money(8), rollup.Tax)
	assert.Equal(t, Money(158), rollup.Total)
}

func TestComputeRollupDeterministic(t *testing.T) {
	items := []LineItem{
		{ProductName: "Teh Botol", Quantity: 3, UnitPrice: 4000},
		{ProductName: "Roti", Quantity: 1, UnitPrice: 12000},
	}

	first, err := ComputeRollup(items, 500, 0.11)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeRollup(items, 500, 0.11)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeRollupInvalidInput(t *testing.T) {
	valid := []LineItem{{ProductName: "A", Quantity: 1, UnitPrice: 100}}

	cases := []struct {
		name     string
		items    []LineItem
		discount Money
		taxRate  float64
		want     error
	}{
		{"empty items", nil, 0, 0, ErrInvalidInput},
		{"empty product name", []LineItem{{Quantity: 1, UnitPrice: 100}}, 0, 0, ErrInvalidInput},
		{"zero quantity", []LineItem{{ProductName: "A", Quantity: 0, UnitPrice: 100}}, 0, 0, ErrInvalidInput},
		{"negative unit price", []LineItem{{ProductName: "A", Quantity: 1, UnitPrice: -1}}, 0, 0, ErrInvalidInput},
		{"negative tax rate", valid, 0, -0.1, ErrInvalidInput},
		{"negative discount", valid, -1, 0, ErrInvalidDiscount},
		{"discount exceeds subtotal", valid, 101, 0, ErrInvalidDiscount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeRollup(tc.items, tc.discount, tc.taxRate)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestComputeRollupDiscountEqualsSubtotal(t *testing.T) {
	items := []LineItem{{ProductName: "A", Quantity: 2, UnitPrice: 50}}
	rollup, err := ComputeRollup(items, 100, 0.11)
	require.NoError(t, err)
	assert.Equal(t, Money(0), rollup.Tax)
	assert.Equal(t, Money(0), rollup.Total)
}
