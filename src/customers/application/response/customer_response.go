package response

import "time"

// CustomerResponse representa un cliente en las respuestas del API
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCustomersResponse respuesta del listado de clientes
type ListCustomersResponse struct {
	Items      []CustomerResponse `json:"items"`
	TotalCount int                `json:"total_count"`
}
