package dto

// Formatos de exportación del reporte de ventas.
const (
	ReportFormatXLSX = "xlsx"
	ReportFormatPDF  = "pdf"
)

// SalesReportRequest rango de fechas y formato del reporte.
// Las fechas van en formato 2006-01-02.
type SalesReportRequest struct {
	Format    string `json:"format"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SalesReportFile archivo generado listo para descargar.
type SalesReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
