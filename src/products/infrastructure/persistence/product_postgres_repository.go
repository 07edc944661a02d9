package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
	sqlCriteria "github.com/iquintero24/Firmeza-project/src/shared/infrastructure/criteria"
	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// Save inserta un producto y asigna su ID
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, unit_price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.Stock,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}

// Update actualiza los datos del catálogo del producto.
// La columna stock se excluye a propósito: solo muta vía Decrement/IncrementStock.
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, unit_price = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Description,
		product.UnitPrice,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// Delete elimina un producto
func (r *ProductPostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, unit_price, stock, created_at
		FROM products
		WHERE id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.UnitPrice,
		&product.Stock,
		&product.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// List retorna productos según el criteria con su conteo total
func (r *ProductPostgresRepository) List(ctx context.Context, criteria domainCriteria.Criteria) ([]*entity.Product, int, error) {
	// 1. Contar total según filtros
	countQuery, countParams := r.converter.ToCountSQL("SELECT COUNT(*) FROM products", criteria)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	// 2. Obtener página de productos
	baseQuery := `SELECT id, name, description, unit_price, stock, created_at FROM products`
	query, params := r.converter.ToSelectSQL(baseQuery, criteria)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.UnitPrice,
			&product.Stock,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}

// DecrementStock descuenta stock con un UPDATE condicional atómico.
// El predicado stock >= quantity en la misma sentencia elimina la carrera
// check-then-act entre ventas concurrentes sobre el mismo producto.
func (r *ProductPostgresRepository) DecrementStock(ctx context.Context, id int64, quantity int) error {
	query := `
		UPDATE products
		SET stock = stock - $1
		WHERE id = $2 AND stock >= $1
	`

	result, err := r.db.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Distinguir producto inexistente de stock insuficiente
		var exists bool
		err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking product existence: %w", err)
		}
		if !exists {
			return entity.ErrProductNotFound
		}
		return entity.ErrInsufficientStock
	}

	return nil
}

// IncrementStock devuelve stock al producto. Retorna false si el producto no existe.
func (r *ProductPostgresRepository) IncrementStock(ctx context.Context, id int64, quantity int) (bool, error) {
	query := `
		UPDATE products
		SET stock = stock + $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return false, fmt.Errorf("error incrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// HasSaleReferences indica si el producto aparece en detalles de venta
func (r *ProductPostgresRepository) HasSaleReferences(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sale_details WHERE product_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking sale references: %w", err)
	}
	return exists, nil
}
