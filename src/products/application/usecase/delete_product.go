package usecase

import (
	"context"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
)

// DeleteProductUseCase caso de uso para eliminar un producto
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute elimina el producto. Retorna (false, nil) si no existe.
// Un producto referenciado por detalles de venta no puede borrarse,
// mismo patrón de guarda que la eliminación de clientes.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id int64) (bool, error) {
	_, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == entity.ErrProductNotFound {
			return false, nil
		}
		return false, err
	}

	referenced, err := uc.productRepo.HasSaleReferences(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking sale references: %w", err)
	}
	if referenced {
		return false, entity.ErrProductHasSales
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("error deleting product: %w", err)
	}

	return true, nil
}
