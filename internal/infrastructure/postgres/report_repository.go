package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes (usable con pool o tx).
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesBetween devuelve las ventas del rango [start, end] con datos del
// cliente, ordenadas por fecha DESC.
func (r *ReportRepo) SalesBetween(start, end time.Time) ([]repository.ReportRow, error) {
	query := `
		SELECT s.id, s.date, c.name, c.cedula, s.total, s.payment_method, s.description
		FROM sales s
		JOIN customers c ON s.customer_id = c.id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date DESC`
	rows, err := r.q.Query(context.Background(), query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales report query: %w", err)
	}
	defer rows.Close()
	var list []repository.ReportRow
	for rows.Next() {
		var row repository.ReportRow
		if err := rows.Scan(&row.SaleID, &row.Date, &row.CustomerName, &row.CustomerCedula,
			&row.Total, &row.PaymentMethod, &row.Description); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
