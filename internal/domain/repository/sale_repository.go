package repository

import (
	"time"

	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
)

// SaleFilter filtros del historial de ventas. Query busca en nombre o cédula
// del cliente; StartDate/EndDate acotan por fecha de venta (nil = sin límite).
type SaleFilter struct {
	Query     string
	StartDate *time.Time
	EndDate   *time.Time
}

// SaleWithCustomer fila del historial: la venta más los datos del cliente.
type SaleWithCustomer struct {
	Sale           entity.Sale
	CustomerName   string
	CustomerCedula string
}

// SaleDetailWithProduct línea de venta con el nombre del producto.
type SaleDetailWithProduct struct {
	Detail      entity.SaleDetail
	ProductName string
}

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*SaleWithCustomer, error)
	GetDetailsBySaleID(saleID string) ([]*SaleDetailWithProduct, error)
	// List devuelve el historial filtrado ordenado por fecha DESC.
	List(filter SaleFilter) ([]*SaleWithCustomer, error)
}
