package invoice

import (
	"bytes"
	"fmt"

	"fenix/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF draws a type B invoice in the classic AFIP receipt layout:
// ORIGINAL band, letter box, company block, client block, items table
// and totals. Amounts are printed with two decimals.
func RenderPDF(inv *domain.Invoice, pointOfSale string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ORIGINAL band
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 8, "ORIGINAL", "1", 1, "C", false, 0, "")

	// Header: letter box, title, receipt data
	top := pdf.GetY()
	pdf.Rect(10, top, 190, 26, "D")
	pdf.Rect(95, top, 14, 14, "D")
	pdf.SetXY(95, top+2)
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(14, 8, "B", "", 1, "C", false, 0, "")
	pdf.SetX(95)
	pdf.SetFont("Arial", "", 6)
	pdf.CellFormat(14, 3, "COD. 06", "", 1, "C", false, 0, "")

	pdf.SetXY(12, top+4)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(80, 8, "FACTURA B", "", 0, "L", false, 0, "")

	pdf.SetXY(120, top+3)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(78, 5, tr(fmt.Sprintf("Punto de Venta: %s", pointOfSale)), "", 2, "L", false, 0, "")
	pdf.CellFormat(78, 5, tr(fmt.Sprintf("Comp. Nro.: %s", inv.Number)), "", 2, "L", false, 0, "")
	pdf.CellFormat(78, 5, tr(fmt.Sprintf("Fecha de Emisión: %s", inv.CreatedAt.Format("02/01/2006"))), "", 2, "L", false, 0, "")
	pdf.SetY(top + 27)

	// Company block
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(110, 5, tr(fmt.Sprintf("Razón Social: %s", CompanyName)), "", 0, "L", false, 0, "")
	pdf.CellFormat(80, 5, fmt.Sprintf("CUIT: %s", CompanyCUIT), "", 1, "L", false, 0, "")
	pdf.CellFormat(110, 5, tr(fmt.Sprintf("Domicilio Comercial: %s", CompanyAddress)), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 5, tr(fmt.Sprintf("Condición frente al IVA: %s", CompanyIVA)), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Client block
	pdf.CellFormat(190, 5, tr(fmt.Sprintf("Apellidos y Nombre / Razón Social: %s", inv.Client)), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 5, tr("Condición frente al IVA: Consumidor Final"), "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(16, 7, tr("Código"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(84, 7, "Producto / Servicio", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Cantidad", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "U. Medida", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Precio Unit.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Subtotal", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for i, item := range inv.Items {
		pdf.CellFormat(16, 6, fmt.Sprintf("%03d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(84, 6, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, "un", "1", 0, "C", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("$ %.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("$ %.2f", item.LineTotal()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals: type B final consumer, VAT not discriminated
	totalRow := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(130, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(34, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("$ %.2f", amount), "B", 1, "R", false, 0, "")
	}
	totalRow("Subtotal:", inv.Total, false)
	totalRow("IVA:", 0, false)
	totalRow("Importe Total:", inv.Total, true)

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "", 7)
	pdf.CellFormat(190, 4, tr("Comprobante Autorizado - CAE N°: _____________ Fecha de Vto. de CAE: --/--/----"), "T", 1, "C", false, 0, "")
	pdf.CellFormat(190, 4, "Generado por Sistema Fenix", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
