package usecase

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/customers/application/response"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// GetCustomerUseCase caso de uso para obtener un cliente por ID
type GetCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewGetCustomerUseCase crea una nueva instancia del caso de uso
func NewGetCustomerUseCase(customerRepo port.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute obtiene el cliente
func (uc *GetCustomerUseCase) Execute(ctx context.Context, id int64) (*response.CustomerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}
