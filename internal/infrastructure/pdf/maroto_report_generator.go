// Package pdf genera el reporte de ventas como documento PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de Ventas + rango de fechas                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada venta: ID, fecha, cliente (cédula), total,        │
//	│  método de pago y descripción                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/muebleria-pos/internal/application/reports"
	"github.com/tu-usuario/muebleria-pos/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesPDF(_ context.Context, rows []repository.ReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, r := range rows {
		for _, saleRow := range saleRows(r) {
			m.AddRows(saleRow)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: encabezado del reporte.
func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// saleRows: bloque de líneas de una venta del reporte.
func saleRows(r repository.ReportRow) []core.Row {
	lines := []string{
		"ID de Venta: " + r.SaleID,
		"Fecha: " + r.Date.Format("02/01/2006 15:04"),
		fmt.Sprintf("Cliente: %s (%s)", r.CustomerName, r.CustomerCedula),
		"Total: $" + r.Total.Round(2).StringFixed(2),
		"Método de Pago: " + r.PaymentMethod,
		"Descripción: " + nonEmpty(r.Description, "—"),
	}
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(5).Add(
			col.New(12).Add(text.New(l, props.Text{Size: 9})),
		))
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
