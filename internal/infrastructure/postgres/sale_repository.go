package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/muebleria-pos/internal/domain/entity"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, date, total, payment_method, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.Date, sale.Total,
		sale.PaymentMethod, sale.Description, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de la venta con su foto de precio.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, description)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID, detail.Quantity,
		detail.UnitPrice, detail.Description,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

const saleWithCustomerColumns = `
	s.id, s.customer_id, s.date, s.total, s.payment_method, s.description, s.created_at,
	c.name, c.cedula`

// GetByID obtiene una venta con los datos del cliente.
func (r *SaleRepo) GetByID(id string) (*repository.SaleWithCustomer, error) {
	query := `
		SELECT` + saleWithCustomerColumns + `
		FROM sales s
		JOIN customers c ON s.customer_id = c.id
		WHERE s.id = $1`
	var row repository.SaleWithCustomer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&row.Sale.ID, &row.Sale.CustomerID, &row.Sale.Date, &row.Sale.Total,
		&row.Sale.PaymentMethod, &row.Sale.Description, &row.Sale.CreatedAt,
		&row.CustomerName, &row.CustomerCedula,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &row, nil
}

// GetDetailsBySaleID obtiene las líneas de una venta con el nombre del producto.
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*repository.SaleDetailWithProduct, error) {
	query := `
		SELECT d.id, d.sale_id, d.product_id, d.quantity, d.unit_price, d.description, p.name
		FROM sale_details d
		JOIN products p ON d.product_id = p.id
		WHERE d.sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("get sale details: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleDetailWithProduct
	for rows.Next() {
		var d repository.SaleDetailWithProduct
		if err := rows.Scan(&d.Detail.ID, &d.Detail.SaleID, &d.Detail.ProductID,
			&d.Detail.Quantity, &d.Detail.UnitPrice, &d.Detail.Description, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List devuelve el historial filtrado, ordenado por fecha DESC.
// Query busca en nombre o cédula del cliente; las fechas acotan el rango.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithCustomer, error) {
	sql := `
		SELECT` + saleWithCustomerColumns + `
		FROM sales s
		JOIN customers c ON s.customer_id = c.id`
	var conditions []string
	var args []any
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("(c.name ILIKE $%d OR c.cedula ILIKE $%d)", len(args), len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("s.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("s.date <= $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " ORDER BY s.date DESC"

	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleWithCustomer
	for rows.Next() {
		var row repository.SaleWithCustomer
		if err := rows.Scan(
			&row.Sale.ID, &row.Sale.CustomerID, &row.Sale.Date, &row.Sale.Total,
			&row.Sale.PaymentMethod, &row.Sale.Description, &row.Sale.CreatedAt,
			&row.CustomerName, &row.CustomerCedula,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
