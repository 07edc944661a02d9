package request

import "github.com/shopspring/decimal"

// CreateProductRequest request para crear un producto
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Stock       int             `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest request para editar un producto.
// No incluye stock: el stock solo se muta vía reservas/liberaciones.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}
