package usecase

import (
	"context"
	"fmt"
	"log"

	productUsecase "github.com/iquintero24/Firmeza-project/src/products/application/usecase"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// DeleteSaleUseCase caso de uso para anular una venta.
// La anulación es la reversa exacta de la creación: cada línea devuelve
// su cantidad al inventario antes de eliminar el registro. Si el borrado
// falla, el stock liberado se vuelve a reservar para no dejar inventario
// inflado con la venta todavía registrada.
type DeleteSaleUseCase struct {
	saleRepo     port.SaleRepository
	releaseStock *productUsecase.ReleaseStockUseCase
	reserveStock *productUsecase.ReserveStockUseCase
}

// NewDeleteSaleUseCase crea una nueva instancia del caso de uso
func NewDeleteSaleUseCase(saleRepo port.SaleRepository, releaseStock *productUsecase.ReleaseStockUseCase, reserveStock *productUsecase.ReserveStockUseCase) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo:     saleRepo,
		releaseStock: releaseStock,
		reserveStock: reserveStock,
	}
}

// Execute anula la venta. Retorna (false, nil) si la venta no existe:
// para quien llama, anular una venta inexistente no es un error.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID int64) (bool, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if err == entity.ErrSaleNotFound {
			return false, nil
		}
		return false, fmt.Errorf("error loading sale %d: %w", saleID, err)
	}

	// Devolver el stock de cada línea. Las líneas de productos ya
	// borrados del catálogo se saltan (no-op dentro del release).
	released := make([]entity.SaleDetail, 0, len(sale.Details))
	for _, d := range sale.Details {
		if err := uc.releaseStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("❌ Error releasing stock for product %d while deleting sale %d: %v",
				d.ProductID, saleID, err)
			continue
		}
		released = append(released, d)
	}

	if err := uc.saleRepo.Delete(ctx, saleID); err != nil {
		uc.compensateRelease(ctx, released, saleID)
		return false, fmt.Errorf("error deleting sale %d: %w", saleID, err)
	}

	log.Printf("🗑️  Sale %d deleted: receipt %s, %d lines released", saleID, sale.ReceiptNumber, len(sale.Details))
	return true, nil
}

// compensateRelease vuelve a reservar el stock liberado cuando el borrado
// falla: la venta sigue registrada, así que su stock debe seguir descontado.
func (uc *DeleteSaleUseCase) compensateRelease(ctx context.Context, released []entity.SaleDetail, saleID int64) {
	for _, d := range released {
		if err := uc.reserveStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("❌ Error re-reserving stock for product %d after failed delete of sale %d: %v",
				d.ProductID, saleID, err)
		}
	}
}
