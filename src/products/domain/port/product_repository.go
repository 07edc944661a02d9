package port

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"
)

// ProductRepository define el contrato para persistir productos.
// Las mutaciones de stock pasan exclusivamente por DecrementStock/IncrementStock
// para mantener el invariante stock >= 0 en un solo lugar.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, criteria domainCriteria.Criteria) ([]*entity.Product, int, error)

	// DecrementStock descuenta stock de forma condicional y atómica.
	// Retorna ErrProductNotFound si el producto no existe y
	// ErrInsufficientStock si el stock disponible es menor a quantity.
	DecrementStock(ctx context.Context, id int64, quantity int) error

	// IncrementStock devuelve stock al producto. Si el producto no existe
	// retorna (false, nil): la liberación sobre un producto borrado es un no-op.
	IncrementStock(ctx context.Context, id int64, quantity int) (bool, error)

	// HasSaleReferences indica si existen sale_details que referencian al producto
	HasSaleReferences(ctx context.Context, id int64) (bool, error)
}
