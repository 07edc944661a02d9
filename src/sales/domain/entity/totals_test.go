package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDetail(t *testing.T, productID int64, name string, qty int, price string) SaleDetail {
	t.Helper()
	d, err := NewSaleDetail(productID, name, qty, decimal.RequireFromString(price))
	require.NoError(t, err)
	return *d
}

func TestComputeTotals(t *testing.T) {
	details := []SaleDetail{
		mustDetail(t, 1, "Cemento gris 50kg", 10, "25500.00"),
		mustDetail(t, 2, "Varilla 3/8", 4, "18900.50"),
	}

	totals := ComputeTotals(details, decimal.RequireFromString("0.19"))

	// 10*25500 + 4*18900.50 = 255000 + 75602 = 330602
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("330602")), "subtotal = %s", totals.Subtotal)
	// 330602 * 0.19 = 62814.38
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("62814.38")), "tax = %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("393416.38")), "total = %s", totals.Total)
}

func TestComputeTotalsRoundsTaxToTwoDecimals(t *testing.T) {
	details := []SaleDetail{
		mustDetail(t, 1, "Tornillo", 3, "333.33"),
	}

	totals := ComputeTotals(details, decimal.RequireFromString("0.19"))

	// 999.99 * 0.19 = 189.9981 → 190.00
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("190.00")), "tax = %s", totals.Tax)
	assert.Equal(t, int32(-2), totals.Tax.Exponent())
}

func TestValidateDeclaredTotalsWithinTolerance(t *testing.T) {
	computed := Totals{
		Subtotal: decimal.RequireFromString("100.00"),
		Tax:      decimal.RequireFromString("19.00"),
		Total:    decimal.RequireFromString("119.00"),
	}
	declared := Totals{
		Subtotal: decimal.RequireFromString("100.01"),
		Tax:      decimal.RequireFromString("18.99"),
		Total:    decimal.RequireFromString("119.00"),
	}

	assert.NoError(t, ValidateDeclaredTotals(declared, computed))
}

func TestValidateDeclaredTotalsMismatch(t *testing.T) {
	computed := Totals{
		Subtotal: decimal.RequireFromString("100.00"),
		Tax:      decimal.RequireFromString("19.00"),
		Total:    decimal.RequireFromString("119.00"),
	}

	cases := []struct {
		name     string
		declared Totals
	}{
		{"subtotal off", Totals{
			Subtotal: decimal.RequireFromString("90.00"),
			Tax:      decimal.RequireFromString("19.00"),
			Total:    decimal.RequireFromString("119.00"),
		}},
		{"tax off", Totals{
			Subtotal: decimal.RequireFromString("100.00"),
			Tax:      decimal.RequireFromString("10.00"),
			Total:    decimal.RequireFromString("119.00"),
		}},
		{"total off", Totals{
			Subtotal: decimal.RequireFromString("100.00"),
			Tax:      decimal.RequireFromString("19.00"),
			Total:    decimal.RequireFromString("999.00"),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateDeclaredTotals(tc.declared, computed), ErrTotalsMismatch)
		})
	}
}

func TestSaleDetailExtension(t *testing.T) {
	d := mustDetail(t, 7, "Arena fina m3", 3, "45000.00")
	assert.True(t, d.Extension().Equal(decimal.RequireFromString("135000.00")))
}

func TestNewSaleDetailValidations(t *testing.T) {
	_, err := NewSaleDetail(1, "Cemento", 0, decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSaleDetail(1, "Cemento", -3, decimal.RequireFromString("10.00"))
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewSaleDetail(1, "Cemento", 1, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAppliedPrice)

	_, err = NewSaleDetail(1, "Cemento", 1, decimal.RequireFromString("-5.00"))
	assert.ErrorIs(t, err, ErrInvalidAppliedPrice)
}

func TestNewSaleRequiresItems(t *testing.T) {
	_, err := NewSale(1, nil, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, ErrSaleMustHaveItems)
}

func TestGenerateReceiptNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := GenerateReceiptNumber()
		require.Len(t, n, 8)
		for _, r := range n {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'),
				"unexpected rune %q in %s", r, n)
		}
		assert.False(t, seen[n], "duplicate receipt number %s", n)
		seen[n] = true
	}
}

func TestNewSaleAssignsReceiptNumberAndDate(t *testing.T) {
	d := mustDetail(t, 1, "Cemento", 1, "10.00")
	sale, err := NewSale(5, []SaleDetail{d}, decimal.RequireFromString("10.00"),
		decimal.RequireFromString("1.90"), decimal.RequireFromString("11.90"))
	require.NoError(t, err)

	assert.Len(t, sale.ReceiptNumber, 8)
	assert.False(t, sale.SaleDate.IsZero())
	assert.Equal(t, int64(5), sale.CustomerID)
}
