package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
)

// SaleDetailResponse línea de venta tal como se muestra en el detalle
type SaleDetailResponse struct {
	ID               int64           `json:"id"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	AppliedUnitPrice decimal.Decimal `json:"applied_unit_price"`
	Extension        decimal.Decimal `json:"extension"`
}

// SaleSummaryResponse vista resumida de una venta (listados)
type SaleSummaryResponse struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	SaleDate      time.Time       `json:"sale_date"`
	ReceiptNumber string          `json:"receipt_number"`
	Total         decimal.Decimal `json:"total"`
	ReceiptPath   string          `json:"receipt_path,omitempty"`
}

// SaleResponse vista completa de una venta con sus líneas
type SaleResponse struct {
	ID            int64                `json:"id"`
	CustomerID    int64                `json:"customer_id"`
	CustomerName  string               `json:"customer_name"`
	SaleDate      time.Time            `json:"sale_date"`
	ReceiptNumber string               `json:"receipt_number"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	ReceiptPath   string               `json:"receipt_path,omitempty"`
	Details       []SaleDetailResponse `json:"details"`
}

// SaleListResponse respuesta paginada de ventas
type SaleListResponse struct {
	Sales []SaleSummaryResponse `json:"sales"`
	Total int                   `json:"total"`
}

// NewSaleSummaryResponse construye el resumen desde la entidad
func NewSaleSummaryResponse(sale *entity.Sale) SaleSummaryResponse {
	return SaleSummaryResponse{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		SaleDate:      sale.SaleDate,
		ReceiptNumber: sale.ReceiptNumber,
		Total:         sale.Total,
		ReceiptPath:   sale.ReceiptPath,
	}
}

// NewSaleResponse construye la vista completa desde la entidad
func NewSaleResponse(sale *entity.Sale) SaleResponse {
	details := make([]SaleDetailResponse, 0, len(sale.Details))
	for _, d := range sale.Details {
		details = append(details, SaleDetailResponse{
			ID:               d.ID,
			ProductID:        d.ProductID,
			ProductName:      d.ProductName,
			Quantity:         d.Quantity,
			AppliedUnitPrice: d.AppliedUnitPrice,
			Extension:        d.Extension(),
		})
	}
	return SaleResponse{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		SaleDate:      sale.SaleDate,
		ReceiptNumber: sale.ReceiptNumber,
		Subtotal:      sale.Subtotal,
		Tax:           sale.Tax,
		Total:         sale.Total,
		ReceiptPath:   sale.ReceiptPath,
		Details:       details,
	}
}

// NewSaleListResponse construye la respuesta paginada
func NewSaleListResponse(sales []*entity.Sale, total int) SaleListResponse {
	out := make([]SaleSummaryResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleSummaryResponse(s))
	}
	return SaleListResponse{Sales: out, Total: total}
}
