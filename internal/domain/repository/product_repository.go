package repository

import "github.com/tu-usuario/muebleria-pos/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT ... FOR UPDATE)
	// hasta el commit/rollback de la transacción en curso.
	GetForUpdate(id string) (*entity.Product, error)
	// Search lista productos; query filtra por nombre, categoría o color (ILIKE).
	// Orden: categoría, nombre.
	Search(query string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementQuantity resta qty al stock del producto.
	DecrementQuantity(id string, qty int) error
	Delete(id string) error
}
