package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un mueble del inventario.
// Quantity es el stock disponible; solo el flujo de venta lo decrementa
// (con bloqueo de fila) y nunca queda negativo.
type Product struct {
	ID          string
	Name        string
	Category    string // sala, comedor, alcoba, oficina...
	Color       string
	Price       decimal.Decimal // precio de venta vigente
	Quantity    int             // stock disponible, >= 0
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
