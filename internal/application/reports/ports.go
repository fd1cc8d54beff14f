package reports

import (
	"context"

	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// SpreadsheetGenerator genera el reporte de ventas como libro XLSX.
type SpreadsheetGenerator interface {
	GenerateSalesXLSX(ctx context.Context, rows []repository.ReportRow) ([]byte, error)
}

// PDFGenerator genera el reporte de ventas como documento PDF.
type PDFGenerator interface {
	GenerateSalesPDF(ctx context.Context, rows []repository.ReportRow) ([]byte, error)
}
