package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto en las respuestas del API
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ListProductsResponse respuesta del listado de productos
type ListProductsResponse struct {
	Items      []ProductResponse `json:"items"`
	TotalCount int               `json:"total_count"`
}
