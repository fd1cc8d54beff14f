// Package excel genera el reporte de ventas como libro XLSX.
//
// Una sola hoja "Reporte de Ventas": fila de encabezados en negrita y una
// fila por venta del rango consultado.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/muebleria-pos/internal/application/reports"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// SheetName nombre de la hoja del reporte.
const SheetName = "Reporte de Ventas"

var headers = []string{"ID de Venta", "Fecha", "Cliente", "Cédula", "Total", "Método de Pago", "Descripción"}

var _ reports.SpreadsheetGenerator = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implementa reports.SpreadsheetGenerator usando excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// GenerateSalesXLSX genera el libro y devuelve sus bytes.
func (g *ExcelizeReportGenerator) GenerateSalesXLSX(_ context.Context, rows []repository.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de encabezado: %w", err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: escribir encabezado: %w", err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, boldStyle); err != nil {
			return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.SaleID,
			row.Date.Format("2006-01-02 15:04"),
			row.CustomerName,
			row.CustomerCedula,
			row.Total.InexactFloat64(),
			row.PaymentMethod,
			row.Description,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda de datos: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: escribir celda: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
