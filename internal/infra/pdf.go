package infra

// pdf.go — printable repair work orders using go-pdf/fpdf.
// A5 portrait: shop header, folio and intake date, client/device table,
// service description, cost breakdown (cost, down payment, balance) and the
// unlock information the technician needs.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
)

// GenerateRepairPDF renders a work order as an in-memory PDF document.
func GenerateRepairPDF(order *model.RepairOrder) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Omicron POS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Orden de Reparacion", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Folio: "+order.Folio, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 6, order.CreatedAt.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(3)

	// ── Client and device ────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.3, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW*0.7, 6, value, "", 1, "L", false, 0, "")
	}

	row("Cliente:", order.ClientName)
	row("Telefono:", order.Phone)
	row("Equipo:", fmt.Sprintf("%s %s (%s)", order.Device.Brand, order.Device.Model, order.Device.Color))
	row("Estado:", order.Status)
	if order.DeliveryDate != nil {
		row("Entrega:", order.DeliveryDate.Format("02/01/2006"))
	}
	pdf.Ln(2)

	// ── Service ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Servicio", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 5, order.Service, "", "L", false)
	if order.Comments != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(contentW, 4, order.Comments, "", "L", false)
	}
	pdf.Ln(2)

	// ── Costs ────────────────────────────────────────────────────────────────
	balance := order.Cost.Sub(order.DownPayment)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW*0.6, 5, "Costo:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 5, "$"+order.Cost.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW*0.6, 5, "Anticipo:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 5, "-$"+order.DownPayment.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.6, 6, "SALDO:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, "$"+balance.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(2)

	// ── Unlock info ──────────────────────────────────────────────────────────
	if order.UnlockType != model.UnlockNone {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 4, fmt.Sprintf("Desbloqueo (%s): %s", order.UnlockType, order.UnlockCode), "", 1, "L", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Conserve este documento para recoger su equipo.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
