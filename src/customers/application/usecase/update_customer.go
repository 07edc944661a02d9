package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/iquintero24/Firmeza-project/src/customers/application/request"
	"github.com/iquintero24/Firmeza-project/src/customers/application/response"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// UpdateCustomerUseCase caso de uso para editar un cliente
type UpdateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewUpdateCustomerUseCase crea una nueva instancia del caso de uso
func NewUpdateCustomerUseCase(customerRepo port.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute actualiza los datos del cliente manteniendo la unicidad de documento/email
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id int64, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	duplicate, err := isDocumentOrEmailDuplicate(ctx, uc.customerRepo, id, req.Document, req.Email)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, entity.ErrDuplicateCustomer
	}

	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entity.ErrCustomerNameRequired
	}

	customer.Name = name
	customer.Document = strings.TrimSpace(req.Document)
	customer.Email = strings.TrimSpace(req.Email)
	customer.Phone = req.Phone

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return toCustomerResponse(customer), nil
}
