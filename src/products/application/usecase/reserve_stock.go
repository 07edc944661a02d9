package usecase

import (
	"context"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
)

// ReserveStockUseCase caso de uso para reservar stock de un producto.
// Única puerta de entrada para descontar stock: el workflow de ventas
// lo invoca exactamente una vez por línea por transición.
type ReserveStockUseCase struct {
	productRepo port.ProductRepository
}

// NewReserveStockUseCase crea una nueva instancia del caso de uso
func NewReserveStockUseCase(productRepo port.ProductRepository) *ReserveStockUseCase {
	return &ReserveStockUseCase{
		productRepo: productRepo,
	}
}

// Execute descuenta quantity unidades del stock del producto.
// El decremento es condicional y atómico a nivel de fila (stock >= quantity),
// por lo que dos reservas concurrentes sobre el mismo producto no pueden
// dejar el stock en negativo.
func (uc *ReserveStockUseCase) Execute(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return entity.ErrInvalidQuantity
	}

	if err := uc.productRepo.DecrementStock(ctx, productID, quantity); err != nil {
		if err == entity.ErrProductNotFound || err == entity.ErrInsufficientStock {
			return err
		}
		return fmt.Errorf("error reserving stock for product %d: %w", productID, err)
	}

	return nil
}
