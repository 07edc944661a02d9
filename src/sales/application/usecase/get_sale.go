package usecase

import (
	"context"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/sales/application/response"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// GetSaleUseCase caso de uso para consultar una venta con sus detalles
type GetSaleUseCase struct {
	saleRepo port.SaleRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute retorna la vista completa de la venta (para la pantalla de edición)
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID int64) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if err == entity.ErrSaleNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading sale %d: %w", saleID, err)
	}

	resp := response.NewSaleResponse(sale)
	return &resp, nil
}
