package usecase

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/customers/application/response"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// ListCustomersUseCase caso de uso para listar clientes
type ListCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewListCustomersUseCase crea una nueva instancia del caso de uso
func NewListCustomersUseCase(customerRepo port.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
	}
}

// Execute lista todos los clientes
func (uc *ListCustomersUseCase) Execute(ctx context.Context) (*response.ListCustomersResponse, error) {
	customers, err := uc.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *toCustomerResponse(c))
	}

	return &response.ListCustomersResponse{
		Items:      items,
		TotalCount: len(items),
	}, nil
}
