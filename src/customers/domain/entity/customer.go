package entity

import (
	"strings"
	"time"
)

// Customer representa un cliente registrado (Aggregate Root).
// Email y Document son únicos entre todos los clientes (case-insensitive);
// Email es además el principal de login en el credential store externo.
type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Document   string    `json:"document"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	AuthUserID *string   `json:"auth_user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCustomer crea un nuevo cliente con validaciones básicas
func NewCustomer(name, document, email, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	document = strings.TrimSpace(document)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, ErrCustomerNameRequired
	}
	if document == "" {
		return nil, ErrDocumentRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Customer{
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}, nil
}

// MatchesIdentity indica si el documento o email del cliente colisiona con los dados
func (c *Customer) MatchesIdentity(document, email string) bool {
	return strings.EqualFold(c.Document, document) || strings.EqualFold(c.Email, email)
}
