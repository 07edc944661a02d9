package usecase

import (
	"context"

	"github.com/iquintero24/Firmeza-project/src/products/application/response"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
)

// GetProductUseCase caso de uso para obtener un producto por ID
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute obtiene el producto
func (uc *GetProductUseCase) Execute(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}
