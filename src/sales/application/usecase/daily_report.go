package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iquintero24/Firmeza-project/src/sales/application/response"
)

// DailyReportUseCase caso de uso para el reporte diario de ventas.
// Agrega directamente en SQL; el repositorio no participa porque el
// reporte es una proyección de lectura, no una operación del aggregate.
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha específica (YYYY-MM-DD)
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	// Rango [from, to) sobre sale_date para aprovechar el índice;
	// nunca DATE(sale_date) en el WHERE
	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	querySales := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(subtotal), 0) as subtotal_sum,
			COALESCE(SUM(tax), 0) as tax_sum,
			COALESCE(SUM(total), 0) as total_sum,
			MIN(sale_date) as first_sale,
			MAX(sale_date) as last_sale
		FROM sales
		WHERE sale_date >= $1
			AND sale_date < $2
	`

	var salesCount int
	var subtotalSum, taxSum, totalSum decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, querySales, from, to).Scan(
		&salesCount,
		&subtotalSum,
		&taxSum,
		&totalSum,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	queryUnits := `
		SELECT COALESCE(SUM(d.quantity), 0)
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		WHERE s.sale_date >= $1
			AND s.sale_date < $2
	`

	var unitsSold int
	err = uc.db.QueryRowContext(ctx, queryUnits, from, to).Scan(&unitsSold)
	if err != nil {
		return nil, fmt.Errorf("error querying sale details: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:        date,
		SalesCount:  salesCount,
		UnitsSold:   unitsSold,
		SubtotalSum: subtotalSum,
		TaxSum:      taxSum,
		TotalSum:    totalSum,
	}

	// Timestamps solo si hubo ventas ese día
	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
