package port

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
)

// SaleRepository define el contrato para persistir ventas.
// Save/Update escriben la venta con sus detalles de forma atómica;
// Update reemplaza la colección de detalles completa (clear + insert).
type SaleRepository interface {
	Save(ctx context.Context, sale *entity.Sale) error
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
	FindAll(ctx context.Context) ([]*entity.Sale, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Sale, error)

	// UpdateReceiptPath guarda el locator del PDF generado post-commit
	UpdateReceiptPath(ctx context.Context, id int64, path string) error
}
