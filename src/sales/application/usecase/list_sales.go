package usecase

import (
	"context"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/sales/application/response"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para listar todas las ventas
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute retorna el resumen de todas las ventas, más recientes primero
func (uc *ListSalesUseCase) Execute(ctx context.Context) (*response.SaleListResponse, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}

	resp := response.NewSaleListResponse(sales, len(sales))
	return &resp, nil
}
