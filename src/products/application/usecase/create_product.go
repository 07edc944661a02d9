package usecase

import (
	"context"
	"fmt"

	"github.com/iquintero24/Firmeza-project/src/products/application/request"
	"github.com/iquintero24/Firmeza-project/src/products/application/response"
	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"
)

// CreateProductUseCase caso de uso para crear un producto
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute crea el producto con su stock inicial
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(req.Name, req.Description, req.UnitPrice, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *response.ProductResponse {
	return &response.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}
