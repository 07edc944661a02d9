package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/iquintero24/Firmeza-project/src/customers/application/request"
	"github.com/iquintero24/Firmeza-project/src/customers/application/response"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// CreateCustomerUseCase caso de uso para registrar un cliente.
// El registro crea también las credenciales de login en el credential store
// externo (el email es el principal de login).
type CreateCustomerUseCase struct {
	customerRepo    port.CustomerRepository
	credentialStore port.CredentialStore
}

// NewCreateCustomerUseCase crea una nueva instancia del caso de uso
func NewCreateCustomerUseCase(customerRepo port.CustomerRepository, credentialStore port.CredentialStore) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo:    customerRepo,
		credentialStore: credentialStore,
	}
}

// Execute registra el cliente validando unicidad de documento y email
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	customer, err := entity.NewCustomer(req.Name, req.Document, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	// Validar duplicados (case-insensitive sobre documento y email)
	duplicate, err := isDocumentOrEmailDuplicate(ctx, uc.customerRepo, 0, customer.Document, customer.Email)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, entity.ErrDuplicateCustomer
	}

	// Crear el registro de credenciales vinculado (si hay credential store configurado)
	if uc.credentialStore != nil {
		authUserID, err := uc.credentialStore.CreateUser(ctx, customer.Email)
		if err != nil {
			return nil, fmt.Errorf("error creating login credentials: %w", err)
		}
		customer.AuthUserID = &authUserID
	}

	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		// Revertir el registro de credenciales recién creado
		if uc.credentialStore != nil && customer.AuthUserID != nil {
			if delErr := uc.credentialStore.DeleteUser(ctx, *customer.AuthUserID); delErr != nil {
				log.Printf("⚠️  Could not roll back credential record %s: %v", *customer.AuthUserID, delErr)
			}
		}
		return nil, fmt.Errorf("error saving customer: %w", err)
	}

	return toCustomerResponse(customer), nil
}

// isDocumentOrEmailDuplicate recorre los clientes buscando colisión de identidad,
// excluyendo al propio cliente cuando excludeID > 0 (caso de edición)
func isDocumentOrEmailDuplicate(ctx context.Context, repo port.CustomerRepository, excludeID int64, document, email string) (bool, error) {
	customers, err := repo.FindAll(ctx)
	if err != nil {
		return false, fmt.Errorf("error checking duplicates: %w", err)
	}

	for _, c := range customers {
		if c.ID != excludeID && c.MatchesIdentity(document, email) {
			return true, nil
		}
	}

	return false, nil
}

func toCustomerResponse(c *entity.Customer) *response.CustomerResponse {
	return &response.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
