package entity

import (
	"github.com/shopspring/decimal"
)

// SaleDetail representa una línea dentro de una venta (Entity dentro del Aggregate).
// AppliedUnitPrice es el precio aplicado al momento de la venta: nunca se
// relee del precio vigente del producto, para preservar la integridad histórica.
type SaleDetail struct {
	ID               int64           `json:"id"`
	SaleID           int64           `json:"sale_id"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	AppliedUnitPrice decimal.Decimal `json:"applied_unit_price"`
}

// NewSaleDetail crea una nueva línea de venta
func NewSaleDetail(productID int64, productName string, quantity int, appliedUnitPrice decimal.Decimal) (*SaleDetail, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if appliedUnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAppliedPrice
	}

	return &SaleDetail{
		ProductID:        productID,
		ProductName:      productName,
		Quantity:         quantity,
		AppliedUnitPrice: appliedUnitPrice,
	}, nil
}

// Extension retorna el total de la línea (cantidad × precio aplicado)
func (d *SaleDetail) Extension() decimal.Decimal {
	return d.AppliedUnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
