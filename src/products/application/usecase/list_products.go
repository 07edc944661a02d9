package usecase

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/products/application/response"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"
)

// ListProductsUseCase caso de uso para listar productos con filtros
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lista los productos según el criteria (búsqueda por nombre + paginación)
func (uc *ListProductsUseCase) Execute(ctx context.Context, criteria domainCriteria.Criteria) (*response.ListProductsResponse, error) {
	products, totalCount, err := uc.productRepo.List(ctx, criteria)
	if err != nil {
		return nil, err
	}

	items := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}

	return &response.ListProductsResponse{
		Items:      items,
		TotalCount: totalCount,
	}, nil
}
