package repository

import "github.com/tu-usuario/muebleria-pos/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	// Count devuelve el total de usuarios registrados (bootstrap del primer gerente).
	Count() (int, error)
}
