package entity

import "time"

// Customer representa un cliente de la mueblería.
// Cedula es la clave de búsqueda externa (única) al registrar ventas.
type Customer struct {
	ID        string
	Name      string
	Cedula    string // documento de identidad, único
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
