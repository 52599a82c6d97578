package workorder

import (
	"bytes"
	"fmt"

	"fenix/internal/pkg/dates"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// RenderSheet produces the printable intake sheet for a work order: a
// header with the code and a QR of it, the client block, the job
// description and the delivery schedule.
func RenderSheet(view *WorkOrderView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(130, 10, "Orden de Trabajo", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(50, 10, view.Code, "1", 1, "C", false, 0, "")

	qrPng, err := qrcode.Encode(view.Code, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("code_qr", opts, bytes.NewReader(qrPng))
	pdf.ImageOptions("code_qr", 160, 28, 35, 35, false, opts, 0, "")

	pdf.Ln(6)
	sectionTitle(pdf, "Cliente")
	field(pdf, "Nombre", view.ClientName)
	field(pdf, "Telefono", view.Phone)
	field(pdf, "CUIL/CUIT", view.TaxID)
	field(pdf, "Domicilio", view.Address)

	pdf.Ln(4)
	sectionTitle(pdf, "Trabajo")
	multiField(pdf, "Descripcion", view.WorkDescription)
	multiField(pdf, "Componentes recibidos", view.ReceivedComponents)
	multiField(pdf, "Observaciones", view.Notes)

	pdf.Ln(4)
	sectionTitle(pdf, "Entrega")
	field(pdf, "Fecha de ingreso", dates.Format(view.IntakeDate))
	field(pdf, "Demora estimada", fmt.Sprintf("%d dias", view.DelayDays))
	field(pdf, "Fecha estimada de entrega", view.EstimatedDelivery)
	field(pdf, "Estado", string(view.Status))

	if len(view.Attachments) > 0 {
		pdf.Ln(4)
		sectionTitle(pdf, "Multimedia")
		field(pdf, "Archivos adjuntos", fmt.Sprintf("%d", len(view.Attachments)))
	}

	pdf.SetY(-25)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "Generado por Sistema Fenix", "T", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func field(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		value = "-"
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(55, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func multiField(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		value = "-"
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, label+":", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, value, "", "L", false)
	pdf.Ln(1)
}
