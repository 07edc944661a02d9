package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (Aggregate Root).
// El campo Stock solo se muta a través de los casos de uso de reserva/liberación,
// nunca por asignación directa desde otros módulos.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewProduct crea un nuevo producto con validaciones básicas
func NewProduct(name, description string, unitPrice decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	return &Product{
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Stock:       stock,
		CreatedAt:   time.Now(),
	}, nil
}
