package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow fila plana del reporte de ventas (venta + cliente), tal como se
// exporta a XLSX o PDF.
type ReportRow struct {
	SaleID         string
	Date           time.Time
	CustomerName   string
	CustomerCedula string
	Total          decimal.Decimal
	PaymentMethod  string
	Description    string
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	// SalesBetween devuelve las ventas del rango [start, end] ordenadas por fecha DESC.
	SalesBetween(start, end time.Time) ([]ReportRow, error)
}
