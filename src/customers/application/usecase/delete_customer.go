package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/port"
)

// DeleteCustomerUseCase caso de uso para eliminar un cliente
type DeleteCustomerUseCase struct {
	customerRepo    port.CustomerRepository
	credentialStore port.CredentialStore
}

// NewDeleteCustomerUseCase crea una nueva instancia del caso de uso
func NewDeleteCustomerUseCase(customerRepo port.CustomerRepository, credentialStore port.CredentialStore) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo:    customerRepo,
		credentialStore: credentialStore,
	}
}

// Execute elimina el cliente. Retorna (false, nil) si no existe.
// Un cliente con ventas asociadas no puede borrarse. Si el cliente tiene
// un registro de credenciales vinculado, se elimina best-effort después.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id int64) (bool, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == entity.ErrCustomerNotFound {
			return false, nil
		}
		return false, err
	}

	hasSales, err := uc.customerRepo.HasSales(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking customer sales: %w", err)
	}
	if hasSales {
		return false, entity.ErrCustomerHasSales
	}

	if err := uc.customerRepo.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("error deleting customer: %w", err)
	}

	// Eliminar credenciales vinculadas; un fallo aquí no revierte el borrado
	if uc.credentialStore != nil && customer.AuthUserID != nil {
		if err := uc.credentialStore.DeleteUser(ctx, *customer.AuthUserID); err != nil {
			log.Printf("⚠️  Could not delete credential record %s for customer %d: %v", *customer.AuthUserID, id, err)
		}
	}

	return true, nil
}
