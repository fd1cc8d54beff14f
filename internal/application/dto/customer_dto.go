package dto

import "time"

// CreateCustomerRequest datos para registrar un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Cedula  string `json:"cedula"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest datos para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Cedula  string `json:"cedula"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse representación de un cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cedula    string    `json:"cedula"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse listado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
