package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Inmutable después de creada.
type Sale struct {
	ID            string
	CustomerID    string
	Date          time.Time       // reloj del servidor al registrar
	Total         decimal.Decimal // total informado por el caller
	PaymentMethod string          // efectivo, tarjeta, transferencia...
	Description   string
	CreatedAt     time.Time
}
