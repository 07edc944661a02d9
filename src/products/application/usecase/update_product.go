package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/iquintero24/Firmeza-project/src/products/application/request"
	"github.com/iquintero24/Firmeza-project/src/products/application/response"
	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/products/domain/port"

	"github.com/shopspring/decimal"
)

// UpdateProductUseCase caso de uso para editar un producto
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute actualiza nombre, descripción y precio. El stock NO se toca aquí:
// el precio vigente tampoco afecta ventas históricas (cada detalle guarda
// su applied_unit_price al momento de la venta).
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id int64, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entity.ErrProductNameRequired
	}
	if req.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidPrice
	}

	product.Name = name
	product.Description = req.Description
	product.UnitPrice = req.UnitPrice

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return toProductResponse(product), nil
}
