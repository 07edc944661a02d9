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

// CreateSaleUseCase caso de uso para registrar una venta.
//
// El workflow es en tres fases:
//  1. Validación completa (cliente, líneas, totales) sin tocar stock
//  2. Reserva de stock línea por línea, con compensación de lo ya
//     reservado si una línea falla
//  3. Persistencia transaccional; si falla, se libera todo el stock
//
// El recibo (PDF + email) se despacha después del commit y nunca
// afecta el resultado de la venta.
type CreateSaleUseCase struct {
	saleRepo     port.SaleRepository
	customerRepo customerPort.CustomerRepository
	productRepo  productPort.ProductRepository
	reserveStock *productUsecase.ReserveStockUseCase
	releaseStock *productUsecase.ReleaseStockUseCase
	dispatcher   port.ReceiptDispatcher
	taxRate      decimal.Decimal
}

// NewCreateSaleUseCase crea una nueva instancia del caso de uso
func NewCreateSaleUseCase(
	saleRepo port.SaleRepository,
	customerRepo customerPort.CustomerRepository,
	productRepo productPort.ProductRepository,
	reserveStock *productUsecase.ReserveStockUseCase,
	releaseStock *productUsecase.ReleaseStockUseCase,
	dispatcher port.ReceiptDispatcher,
	taxRate decimal.Decimal,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		reserveStock: reserveStock,
		releaseStock: releaseStock,
		dispatcher:   dispatcher,
		taxRate:      taxRate,
	}
}

// Execute registra la venta completa o no registra nada
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req request.CreateSaleRequest) (*response.SaleResponse, error) {
	log.Printf("🛒 Creating sale for customer %d with %d items", req.CustomerID, len(req.Items))

	// Fase 1: validar todo antes de mutar stock
	customer, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if err == customerEntity.ErrCustomerNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading customer %d: %w", req.CustomerID, err)
	}

	details, err := uc.buildDetails(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	computed := entity.ComputeTotals(details, uc.taxRate)
	declared := entity.Totals{Subtotal: req.Subtotal, Tax: req.Tax, Total: req.Total}
	if err := entity.ValidateDeclaredTotals(declared, computed); err != nil {
		log.Printf("❌ Totals mismatch for customer %d: declared total %s, computed %s",
			req.CustomerID, declared.Total, computed.Total)
		return nil, err
	}

	sale, err := entity.NewSale(req.CustomerID, details, computed.Subtotal, computed.Tax, computed.Total)
	if err != nil {
		return nil, err
	}

	// Fase 2: reservar stock línea por línea
	if err := uc.reserveAll(ctx, sale.Details); err != nil {
		return nil, err
	}

	// Fase 3: persistir; si falla, devolver el stock reservado
	if err := uc.saleRepo.Save(ctx, sale); err != nil {
		log.Printf("❌ Error saving sale for customer %d, releasing reserved stock: %v", req.CustomerID, err)
		uc.compensate(ctx, sale.Details, len(sale.Details))
		return nil, fmt.Errorf("error saving sale: %w", err)
	}

	sale.CustomerName = customer.Name
	log.Printf("✅ Sale %d created: receipt %s, total %s", sale.ID, sale.ReceiptNumber, sale.Total)

	if uc.dispatcher != nil {
		uc.dispatcher.Dispatch(sale, customer.Name, customer.Email)
	}

	resp := response.NewSaleResponse(sale)
	return &resp, nil
}

// buildDetails valida cada línea contra el catálogo y materializa los
// snapshots (nombre y precio aplicado al momento de la venta)
func (uc *CreateSaleUseCase) buildDetails(ctx context.Context, items []request.SaleItemRequest) ([]entity.SaleDetail, error) {
	details := make([]entity.SaleDetail, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == productEntity.ErrProductNotFound {
				return nil, err
			}
			return nil, fmt.Errorf("error loading product %d: %w", item.ProductID, err)
		}

		// Validar disponibilidad antes de reservar: una línea imposible
		// aborta la venta sin haber tocado stock de las demás
		if product.Stock < item.Quantity {
			return nil, productEntity.ErrInsufficientStock
		}

		detail, err := entity.NewSaleDetail(item.ProductID, product.Name, item.Quantity, item.AppliedUnitPrice)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// reserveAll reserva el stock de todas las líneas. Si una reserva falla
// (otra venta concurrente pudo ganarle el stock pese a la pre-validación),
// libera lo ya reservado y retorna el error de la línea que falló.
func (uc *CreateSaleUseCase) reserveAll(ctx context.Context, details []entity.SaleDetail) error {
	for i, d := range details {
		if err := uc.reserveStock.Execute(ctx, d.ProductID, d.Quantity); err != nil {
			log.Printf("⚠️  Stock reservation failed at product %d, compensating %d reserved lines", d.ProductID, i)
			uc.compensate(ctx, details, i)
			return err
		}
	}
	return nil
}

// compensate libera el stock de las primeras reserved líneas
func (uc *CreateSaleUseCase) compensate(ctx context.Context, details []entity.SaleDetail, reserved int) {
	for j := 0; j < reserved; j++ {
		if err := uc.releaseStock.Execute(ctx, details[j].ProductID, details[j].Quantity); err != nil {
			// Se registra y se continúa: una compensación que falla deja
			// stock fantasma, pero abortar dejaría aún más líneas sin liberar
			log.Printf("❌ Compensation failed for product %d (qty %d): %v",
				details[j].ProductID, details[j].Quantity, err)
		}
	}
}
