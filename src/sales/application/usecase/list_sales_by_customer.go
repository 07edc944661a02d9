package usecase

import (
	"context"
	"fmt"

	customerEntity "github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	customerPort "github.com/iquintero24/Firmeza-project/src/customers/domain/port"
	"github.com/iquintero24/Firmeza-project/src/sales/application/response"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// ListSalesByCustomerUseCase caso de uso para el historial de ventas de un cliente
type ListSalesByCustomerUseCase struct {
	saleRepo     port.SaleRepository
	customerRepo customerPort.CustomerRepository
}

// NewListSalesByCustomerUseCase crea una nueva instancia del caso de uso
func NewListSalesByCustomerUseCase(saleRepo port.SaleRepository, customerRepo customerPort.CustomerRepository) *ListSalesByCustomerUseCase {
	return &ListSalesByCustomerUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// Execute retorna las ventas del cliente. Un cliente inexistente es 404;
// un cliente sin ventas retorna la lista vacía.
func (uc *ListSalesByCustomerUseCase) Execute(ctx context.Context, customerID int64) (*response.SaleListResponse, error) {
	if _, err := uc.customerRepo.FindByID(ctx, customerID); err != nil {
		if err == customerEntity.ErrCustomerNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading customer %d: %w", customerID, err)
	}

	sales, err := uc.saleRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("error listing sales for customer %d: %w", customerID, err)
	}

	resp := response.NewSaleListResponse(sales, len(sales))
	return &resp, nil
}
