package repository

import "github.com/tu-usuario/muebleria-pos/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByCedula busca por documento de identidad (clave externa en ventas).
	GetByCedula(cedula string) (*entity.Customer, error)
	// Search lista clientes; query filtra por nombre, cédula, teléfono o dirección.
	Search(query string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
