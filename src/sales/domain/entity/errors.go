package entity

import "errors"

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrSaleMustHaveItems   = errors.New("sale must have at least one item")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidAppliedPrice = errors.New("applied_unit_price must be greater than 0")
	ErrTotalsMismatch      = errors.New("declared totals do not match computed totals")
)
