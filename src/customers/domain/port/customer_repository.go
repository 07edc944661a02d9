package port

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
)

// CustomerRepository define el contrato para persistir clientes
type CustomerRepository interface {
	Save(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// HasSales indica si el cliente tiene ventas asociadas (guarda de borrado)
	HasSales(ctx context.Context, id int64) (bool, error)
}
