package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de ventas
type DailyReportResponse struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	SalesCount    int             `json:"sales_count"`
	UnitsSold     int             `json:"units_sold"`
	SubtotalSum   decimal.Decimal `json:"subtotal_sum"`
	TaxSum        decimal.Decimal `json:"tax_sum"`
	TotalSum      decimal.Decimal `json:"total_sum"`
	FirstSaleAt   *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt    *time.Time      `json:"last_sale_at,omitempty"`
}
