package services

import (
	"bytes"
	"fmt"

	"MediCareHub/models"

	"github.com/jung-kurt/gofpdf"
)

/*
* Render the payment receipt as a small A4 PDF.
 */
func GenerateReceiptPDF(payment *models.Payment, appointment *models.Appointment, doctor *models.Doctor, patient *models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 64, 128)
	pdf.CellFormat(0, 10, "MediCareHub - Payment Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Doctor", doctor.Name, true)
	addReceiptDetail(pdf, "Specialty", doctor.Specialty, true)
	addReceiptDetail(pdf, "Patient", patient.Name, true)
	addReceiptDetail(pdf, "Date", appointment.Date, true)
	addReceiptDetail(pdf, "Time", appointment.Time, true)

	pdf.CellFormat(0, 10, "Payment", "1", 1, "C", false, 0, "")
	addReceiptDetail(pdf, "Transaction ID", payment.TransactionID, false)
	addReceiptDetail(pdf, "Method", payment.PaymentMethod, false)
	addReceiptDetail(pdf, "Status", payment.Status, false)
	pdf.SetFont("Arial", "B", 13)
	addReceiptDetail(pdf, "Amount", fmt.Sprintf("%.2f", payment.Amount), true)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addReceiptDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
