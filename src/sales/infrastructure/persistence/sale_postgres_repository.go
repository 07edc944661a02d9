package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// La venta y sus detalles se escriben siempre dentro de la misma
// transacción: sales es el aggregate root y sale_details su colección.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Save persiste la venta con sus detalles de forma atómica
func (r *SalePostgresRepository) Save(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (sale_date, receipt_number, customer_id, subtotal, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, querySale,
		sale.SaleDate,
		sale.ReceiptNumber,
		sale.CustomerID,
		sale.Subtotal,
		sale.Tax,
		sale.Total,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	if err := r.insertDetails(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Update actualiza la cabecera y reemplaza la colección de detalles
// completa (delete + insert, no se hace diff línea a línea)
func (r *SalePostgresRepository) Update(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	queryHeader := `
		UPDATE sales
		SET customer_id = $1, subtotal = $2, tax = $3, total = $4
		WHERE id = $5
	`

	result, err := tx.ExecContext(ctx, queryHeader,
		sale.CustomerID,
		sale.Subtotal,
		sale.Tax,
		sale.Total,
		sale.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating sale %d: %w", sale.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_details WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("error clearing sale details for sale %d: %w", sale.ID, err)
	}

	if err := r.insertDetails(ctx, tx, sale); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// insertDetails inserta las líneas de la venta dentro de la transacción
func (r *SalePostgresRepository) insertDetails(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	queryDetail := `
		INSERT INTO sale_details (sale_id, product_id, product_name, quantity, applied_unit_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range sale.Details {
		d := &sale.Details[i]
		d.SaleID = sale.ID
		err := tx.QueryRowContext(ctx, queryDetail,
			d.SaleID,
			d.ProductID,
			d.ProductName,
			d.Quantity,
			d.AppliedUnitPrice,
		).Scan(&d.ID)
		if err != nil {
			return fmt.Errorf("error creating sale detail for product %d: %w", d.ProductID, err)
		}
	}

	return nil
}

// Delete elimina la venta; sale_details cae en cascada por FK
func (r *SalePostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting sale %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleNotFound
	}

	return nil
}

// FindByID retorna la venta con sus detalles y el nombre del cliente
func (r *SalePostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query := `
		SELECT s.id, s.sale_date, s.receipt_number, s.customer_id, c.name,
		       s.subtotal, s.tax, s.total, COALESCE(s.receipt_path, '')
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sale.ID,
		&sale.SaleDate,
		&sale.ReceiptNumber,
		&sale.CustomerID,
		&sale.CustomerName,
		&sale.Subtotal,
		&sale.Tax,
		&sale.Total,
		&sale.ReceiptPath,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale %d: %w", id, err)
	}

	details, err := r.loadDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	sale.Details = details

	return sale, nil
}

// FindAll retorna todas las ventas con sus detalles, más recientes primero
func (r *SalePostgresRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.sale_date, s.receipt_number, s.customer_id, c.name,
		       s.subtotal, s.tax, s.total, COALESCE(s.receipt_path, '')
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		ORDER BY s.sale_date DESC
	`

	return r.querySales(ctx, query)
}

// FindByCustomer retorna las ventas de un cliente, más recientes primero
func (r *SalePostgresRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error) {
	query := `
		SELECT s.id, s.sale_date, s.receipt_number, s.customer_id, c.name,
		       s.subtotal, s.tax, s.total, COALESCE(s.receipt_path, '')
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		WHERE s.customer_id = $1
		ORDER BY s.sale_date DESC
	`

	return r.querySales(ctx, query, customerID)
}

func (r *SalePostgresRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]*entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	sales := []*entity.Sale{}
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SaleDate,
			&sale.ReceiptNumber,
			&sale.CustomerID,
			&sale.CustomerName,
			&sale.Subtotal,
			&sale.Tax,
			&sale.Total,
			&sale.ReceiptPath,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	for _, sale := range sales {
		details, err := r.loadDetails(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Details = details
	}

	return sales, nil
}

// loadDetails carga las líneas de una venta
func (r *SalePostgresRepository) loadDetails(ctx context.Context, saleID int64) ([]entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, applied_unit_price
		FROM sale_details
		WHERE sale_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("error querying details for sale %d: %w", saleID, err)
	}
	defer rows.Close()

	details := []entity.SaleDetail{}
	for rows.Next() {
		var d entity.SaleDetail
		err := rows.Scan(
			&d.ID,
			&d.SaleID,
			&d.ProductID,
			&d.ProductName,
			&d.Quantity,
			&d.AppliedUnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale detail: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale details: %w", err)
	}

	return details, nil
}

// UpdateReceiptPath guarda el locator del PDF generado post-commit
func (r *SalePostgresRepository) UpdateReceiptPath(ctx context.Context, id int64, path string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE sales SET receipt_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("error updating receipt path for sale %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking updated rows: %w", err)
	}
	if affected == 0 {
		return entity.ErrSaleNotFound
	}

	return nil
}
