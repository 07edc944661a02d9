package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// CustomerPostgresRepository implementa CustomerRepository usando PostgreSQL
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository crea una nueva instancia del repositorio
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{
		db: db,
	}
}

// Save inserta un cliente y asigna su ID
func (r *CustomerPostgresRepository) Save(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, document, email, phone, auth_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		customer.Name,
		customer.Document,
		customer.Email,
		customer.Phone,
		customer.AuthUserID, // NULL permitido
		customer.CreatedAt,
	).Scan(&customer.ID)

	if err != nil {
		return fmt.Errorf("error saving customer: %w", err)
	}

	return nil
}

// Update actualiza los datos del cliente
func (r *CustomerPostgresRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, document = $2, email = $3, phone = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		customer.Name,
		customer.Document,
		customer.Email,
		customer.Phone,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating customer: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

// Delete elimina un cliente
func (r *CustomerPostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

// FindByID busca un cliente por su ID
func (r *CustomerPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT id, name, document, email, phone, auth_user_id, created_at
		FROM customers
		WHERE id = $1
	`

	customer := &entity.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Document,
		&customer.Email,
		&customer.Phone,
		&customer.AuthUserID,
		&customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding customer: %w", err)
	}

	return customer, nil
}

// FindAll retorna todos los clientes
func (r *CustomerPostgresRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, document, email, phone, auth_user_id, created_at
		FROM customers
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		customer := &entity.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Document,
			&customer.Email,
			&customer.Phone,
			&customer.AuthUserID,
			&customer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// HasSales indica si el cliente tiene ventas registradas
func (r *CustomerPostgresRepository) HasSales(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sales WHERE customer_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking customer sales: %w", err)
	}
	return exists, nil
}
