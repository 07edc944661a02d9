package entity

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidPrice        = errors.New("unit_price must be greater than 0")
	ErrNegativeStock       = errors.New("stock cannot be negative")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrProductHasSales     = errors.New("product has associated sale details")
)
