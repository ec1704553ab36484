package infra

// pdf.go — monthly sales report rendered with go-pdf/fpdf. One A4 page
// with the month total, a per-week table and a per-day table, written
// to storagePath/reporte_{mes}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Juliancocoro/mi-comalito-pos-version/internal/dto"
)

var nombresMes = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// GenerarReporteMensualPDF writes the month's sales report and returns
// the absolute path of the generated file.
func GenerarReporteMensualPDF(reporte *dto.ReporteMesResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	mes := time.Month(reporte.Mes)
	fileName := fmt.Sprintf("reporte_%02d.pdf", reporte.Mes)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Mi Comalito", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Reporte de ventas - %s", nombresMes[mes]), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "Total del mes: $"+reporte.Total.StringFixed(2), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Per-week table ───────────────────────────────────────────────────────
	colEtiqueta := contentW * 0.6
	colMonto := contentW * 0.4

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colEtiqueta, 6, "Semana", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colMonto, 6, "Vendido", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, semana := range clavesOrdenadas(reporte.PorSemana) {
		pdf.CellFormat(colEtiqueta, 6, fmt.Sprintf("Semana %d", semana), "", 0, "L", false, 0, "")
		pdf.CellFormat(colMonto, 6, "$"+reporte.PorSemana[semana].StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Per-day table ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colEtiqueta, 6, "Día", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colMonto, 6, "Vendido", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, dia := range clavesOrdenadas(reporte.PorDia) {
		pdf.CellFormat(colEtiqueta, 6, fmt.Sprintf("%02d de %s", dia, nombresMes[mes]), "", 0, "L", false, 0, "")
		pdf.CellFormat(colMonto, 6, "$"+reporte.PorDia[dia].StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Generado el "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", fileName, err)
	}
	return filePath, nil
}

func clavesOrdenadas(m map[int]decimal.Decimal) []int {
	claves := make([]int, 0, len(m))
	for k := range m {
		claves = append(claves, k)
	}
	sort.Ints(claves)
	return claves
}
