package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de una venta.
// UnitPrice es una foto del precio del producto al momento de la venta:
// cambios posteriores de precio no alteran líneas históricas.
type SaleDetail struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int // > 0
	UnitPrice   decimal.Decimal
	Description string
}
