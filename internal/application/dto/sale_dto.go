package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea de la venta: producto, cantidad y descripción libre.
type SaleLineRequest struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// CreateSaleRequest datos para registrar una venta. El cliente se identifica
// por cédula; Lines conserva el orden enviado por el caller.
type CreateSaleRequest struct {
	CustomerCedula string            `json:"customer_cedula"`
	Total          decimal.Decimal   `json:"total"`
	PaymentMethod  string            `json:"payment_method"`
	Description    string            `json:"description"`
	Lines          []SaleLineRequest `json:"lines"`
}

// CreateSaleResponse resultado de registrar una venta.
type CreateSaleResponse struct {
	SaleID string    `json:"sale_id"`
	Date   time.Time `json:"date"`
}

// SaleDetailResponse línea de venta con su foto de precio.
type SaleDetailResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

// SaleResponse venta del historial con cliente y detalle.
type SaleResponse struct {
	ID             string               `json:"id"`
	Date           time.Time            `json:"date"`
	CustomerName   string               `json:"customer_name"`
	CustomerCedula string               `json:"customer_cedula"`
	Total          decimal.Decimal      `json:"total"`
	PaymentMethod  string               `json:"payment_method"`
	Description    string               `json:"description"`
	Details        []SaleDetailResponse `json:"details"`
}

// SaleListResponse historial de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
