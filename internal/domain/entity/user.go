package entity

import "time"

// Roles válidos para User. El gerente puede todo; el trabajador registra ventas
// y consulta inventario e historial.
const (
	RoleGerente    = "gerente"
	RoleTrabajador = "trabajador"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // gerente, trabajador
	CreatedAt    time.Time
}
