package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa una venta (Aggregate Root).
// Una venta posee su colección de SaleDetails: se crean juntos, el update
// reemplaza la colección completa y el delete la elimina en cascada.
type Sale struct {
	ID            int64           `json:"id"`
	SaleDate      time.Time       `json:"sale_date"`
	ReceiptNumber string          `json:"receipt_number"`
	CustomerID    int64           `json:"customer_id"`
	CustomerName  string          `json:"customer_name,omitempty"` // Poblado por join, no es columna propia
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	ReceiptPath   string          `json:"receipt_path,omitempty"` // Locator del PDF, escrito post-commit
	Details       []SaleDetail    `json:"details"`
}

// NewSale crea una nueva venta con sus detalles y un receipt number generado
func NewSale(customerID int64, details []SaleDetail, subtotal, tax, total decimal.Decimal) (*Sale, error) {
	if len(details) == 0 {
		return nil, ErrSaleMustHaveItems
	}

	return &Sale{
		SaleDate:      time.Now().UTC(),
		ReceiptNumber: GenerateReceiptNumber(),
		CustomerID:    customerID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Details:       details,
	}, nil
}

// GenerateReceiptNumber genera el número de recibo legible: los primeros
// 8 caracteres hex de un UUID v4 en mayúsculas. La probabilidad de colisión
// es despreciable; la unicidad dura se garantiza con el índice UNIQUE
// sobre la columna receipt_number.
func GenerateReceiptNumber() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
