package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	customerEntity "github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	customerPort "github.com/iquintero24/Firmeza-project/src/customers/domain/port"
	productUsecase "github.com/iquintero24/Firmeza-project/src/products/application/usecase"
	productEntity "github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	productPort "github.com/iquintero24/Firmeza-project/src/products/domain/port"
	"github.com/iquintero24/Firmeza-project/src/sales/application/request"
	"github.com/iquintero24/Firmeza-project/src/sales/application/response"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// UpdateSaleUseCase caso de uso para editar una venta.
//
// La edición trata los detalles como colección reemplazable: primero se
// libera el stock de TODOS los detalles existentes, luego se reserva el
// de los nuevos. No se hace diff línea a línea: una línea sin cambios
// libera y vuelve a reservar la misma cantidad, con efecto neto cero.
type UpdateSaleUseCase struct {
	saleRepo     port.SaleRepository
	customerRepo customerPort.CustomerRepository
	productRepo  productPort.ProductRepository
	reserveStock *productUsecase.ReserveStockUseCase
	releaseStock *productUsecase.ReleaseStockUseCase
	dispatcher   port.ReceiptDispatcher
	taxRate      decimal.Decimal
}

// NewUpdateSaleUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleUseCase(
	saleRepo port.SaleRepository,
	customerRepo customerPort.CustomerRepository,
	productRepo productPort.ProductRepository,
	reserveStock *productUsecase.ReserveStockUseCase,
	releaseStock *productUsecase.ReleaseStockUseCase,
	dispatcher port.ReceiptDispatcher,
	taxRate decimal.Decimal,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		reserveStock: reserveStock,
		releaseStock: releaseStock,
		dispatcher:   dispatcher,
		taxRate:      taxRate,
	}
}

// Execute actualiza la venta completa o deja el estado original intacto
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, saleID int64, req request.UpdateSaleRequest) (*response.SaleResponse, error) {
	log.Printf("✏️  Updating sale %d with %d items", saleID, len(req.Items))

	existing, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if err == entity.ErrSaleNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading sale %d: %w", saleID, err)
	}

	customer, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if err == customerEntity.ErrCustomerNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading customer %d: %w", req.CustomerID, err)
	}

	// Validar líneas nuevas y totales antes de mover stock
	details, err := uc.buildDetails(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	computed := entity.ComputeTotals(details, uc.taxRate)
	declared := entity.Totals{Subtotal: req.Subtotal, Tax: req.Tax, Total: req.Total}
	if err := entity.ValidateDeclaredTotals(declared, computed); err != nil {
		return nil, err
	}

	// Liberar el stock de los detalles actuales
	uc.releaseAll(ctx, existing.Details)

	// Reservar el stock de los detalles nuevos; si una línea falla se
	// compensa lo reservado y se restaura la reserva original
	for i, d := range details {
		if err := uc.reserveStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("⚠️  Update of sale %d failed reserving product %d, restoring original reservations", saleID, d.ProductID)
			uc.compensateNew(ctx, details, i)
			uc.restoreOriginal(ctx, existing.Details)
			return nil, err
		}
	}

	updated := &entity.Sale{
		ID:            existing.ID,
		SaleDate:      existing.SaleDate,
		ReceiptNumber: existing.ReceiptNumber,
		CustomerID:    req.CustomerID,
		Subtotal:      computed.Subtotal,
		Tax:           computed.Tax,
		Total:         computed.Total,
		ReceiptPath:   existing.ReceiptPath,
		Details:       details,
	}

	if err := uc.saleRepo.Update(ctx, updated); err != nil {
		log.Printf("❌ Error persisting update of sale %d, restoring original reservations: %v", saleID, err)
		uc.compensateNew(ctx, details, len(details))
		uc.restoreOriginal(ctx, existing.Details)
		return nil, fmt.Errorf("error updating sale: %w", err)
	}

	updated.CustomerName = customer.Name
	log.Printf("✅ Sale %d updated: new total %s", saleID, updated.Total)

	// El recibo se regenera para reflejar las líneas nuevas
	if uc.dispatcher != nil {
		uc.dispatcher.Dispatch(updated, customer.Name, customer.Email)
	}

	resp := response.NewSaleResponse(updated)
	return &resp, nil
}

func (uc *UpdateSaleUseCase) buildDetails(ctx context.Context, items []request.SaleItemRequest) ([]entity.SaleDetail, error) {
	details := make([]entity.SaleDetail, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == productEntity.ErrProductNotFound {
				return nil, err
			}
			return nil, fmt.Errorf("error loading product %d: %w", item.ProductID, err)
		}

		detail, err := entity.NewSaleDetail(item.ProductID, product.Name, item.Quantity, item.AppliedUnitPrice)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// releaseAll devuelve al inventario el stock de todos los detalles
func (uc *UpdateSaleUseCase) releaseAll(ctx context.Context, details []entity.SaleDetail) {
	for _, d := range details {
		if err := uc.releaseStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("❌ Error releasing stock for product %d (qty %d): %v", d.ProductID, d.Quantity, err)
		}
	}
}

// compensateNew libera el stock de las primeras reserved líneas nuevas
func (uc *UpdateSaleUseCase) compensateNew(ctx context.Context, details []entity.SaleDetail, reserved int) {
	for j := 0; j < reserved; j++ {
		if err := uc.releaseStock.Execute(ctx, details[j].ProductID, details[j].Quantity); err != nil {
			log.Printf("❌ Compensation failed for product %d (qty %d): %v",
				details[j].ProductID, details[j].Quantity, err)
		}
	}
}

// restoreOriginal vuelve a reservar los detalles originales de la venta.
// Es best-effort: si otra venta tomó el stock en el intervalo, el restore
// de esa línea falla y se registra para reconciliación manual.
func (uc *UpdateSaleUseCase) restoreOriginal(ctx context.Context, details []entity.SaleDetail) {
	for _, d := range details {
		if err := uc.reserveStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("❌ Could not restore original reservation for product %d (qty %d): %v",
				d.ProductID, d.Quantity, err)
		}
	}
}
