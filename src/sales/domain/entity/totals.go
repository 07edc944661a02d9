package entity

import (
	"github.com/shopspring/decimal"
)

// totalsTolerance es la tolerancia de redondeo al comparar totales
// declarados por el cliente contra los recalculados (0.01 unidad monetaria)
var totalsTolerance = decimal.New(1, -2)

// Totals agrupa los montos de una venta
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals recalcula los montos desde las líneas:
// subtotal = Σ(cantidad × precio aplicado), tax = subtotal × taxRate
// redondeado a 2 decimales, total = subtotal + tax.
func ComputeTotals(details []SaleDetail, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, d := range details {
		subtotal = subtotal.Add(d.Extension())
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ValidateDeclaredTotals compara los montos declarados por el cliente contra
// los recalculados. Los montos viajan en el request por compatibilidad con el
// front, pero no se confía en ellos: una discrepancia mayor a la tolerancia
// de redondeo rechaza la operación.
func ValidateDeclaredTotals(declared, computed Totals) error {
	if declared.Subtotal.Sub(computed.Subtotal).Abs().GreaterThan(totalsTolerance) {
		return ErrTotalsMismatch
	}
	if declared.Tax.Sub(computed.Tax).Abs().GreaterThan(totalsTolerance) {
		return ErrTotalsMismatch
	}
	if declared.Total.Sub(computed.Total).Abs().GreaterThan(totalsTolerance) {
		return ErrTotalsMismatch
	}
	return nil
}
