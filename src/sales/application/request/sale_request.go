package request

import "github.com/shopspring/decimal"

// SaleItemRequest representa una línea del carrito enviada por el cliente
type SaleItemRequest struct {
	ProductID        int64           `json:"product_id" binding:"required"`
	Quantity         int             `json:"quantity" binding:"required,gt=0"`
	AppliedUnitPrice decimal.Decimal `json:"applied_unit_price" binding:"required"`
}

// CreateSaleRequest request para registrar una venta.
// Subtotal/Tax/Total los manda el front por compatibilidad, pero el
// workflow los recalcula desde las líneas y rechaza discrepancias.
type CreateSaleRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal   decimal.Decimal   `json:"subtotal" binding:"required"`
	Tax        decimal.Decimal   `json:"tax" binding:"required"`
	Total      decimal.Decimal   `json:"total" binding:"required"`
}

// UpdateSaleRequest request para editar una venta. Los detalles nuevos
// reemplazan la colección existente completa (no se hace diff).
type UpdateSaleRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Subtotal   decimal.Decimal   `json:"subtotal" binding:"required"`
	Tax        decimal.Decimal   `json:"tax" binding:"required"`
	Total      decimal.Decimal   `json:"total" binding:"required"`
}
