package entity

import "errors"

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrDocumentRequired     = errors.New("document is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrDuplicateCustomer    = errors.New("a customer with this document or email already exists")
	ErrCustomerHasSales     = errors.New("customer has associated sales")
)
