package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// dateLayout formato de fechas del request (2006-01-02).
const dateLayout = "2006-01-02"

// SalesReportUseCase genera el reporte de ventas de un rango de fechas en
// XLSX o PDF. Las consultas son de solo lectura; el formato lo decide el caller.
type SalesReportUseCase struct {
	reportRepo  repository.ReportRepository
	spreadsheet SpreadsheetGenerator
	pdf         PDFGenerator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(
	reportRepo repository.ReportRepository,
	spreadsheet SpreadsheetGenerator,
	pdf PDFGenerator,
) *SalesReportUseCase {
	return &SalesReportUseCase{reportRepo: reportRepo, spreadsheet: spreadsheet, pdf: pdf}
}

// Generate consulta las ventas del rango y las exporta en el formato pedido.
// Rango vacío (sin ventas) retorna ErrNotFound, como el historial de la tienda.
func (uc *SalesReportUseCase) Generate(ctx context.Context, in dto.SalesReportRequest) (*dto.SalesReportFile, error) {
	if in.Format != dto.ReportFormatXLSX && in.Format != dto.ReportFormatPDF {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	// El límite superior cubre el día completo de EndDate.
	end = end.Add(24*time.Hour - time.Nanosecond)

	rows, err := uc.reportRepo.SalesBetween(start, end)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	baseName := fmt.Sprintf("reporte_ventas_%s_a_%s", in.StartDate, in.EndDate)
	switch in.Format {
	case dto.ReportFormatXLSX:
		content, err := uc.spreadsheet.GenerateSalesXLSX(ctx, rows)
		if err != nil {
			return nil, err
		}
		return &dto.SalesReportFile{
			Filename:    baseName + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	default:
		content, err := uc.pdf.GenerateSalesPDF(ctx, rows)
		if err != nil {
			return nil, err
		}
		return &dto.SalesReportFile{
			Filename:    baseName + ".pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}
