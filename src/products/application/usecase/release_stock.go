package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
)

// ReleaseStockUseCase caso de uso para liberar stock previamente reservado
type ReleaseStockUseCase struct {
	productRepo port.ProductRepository
}

// NewReleaseStockUseCase crea una nueva instancia del caso de uso
func NewReleaseStockUseCase(productRepo port.ProductRepository) *ReleaseStockUseCase {
	return &ReleaseStockUseCase{
		productRepo: productRepo,
	}
}

// Execute devuelve quantity unidades al stock del producto.
// Si el producto ya no existe la liberación es un no-op: la venta que originó
// la reserva puede referenciar productos borrados del catálogo.
func (uc *ReleaseStockUseCase) Execute(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return entity.ErrInvalidQuantity
	}

	found, err := uc.productRepo.IncrementStock(ctx, productID, quantity)
	if err != nil {
		return fmt.Errorf("error releasing stock for product %d: %w", productID, err)
	}
	if !found {
		log.Printf("⚠️  Release stock: product %d no longer exists, skipping", productID)
	}

	return nil
}
