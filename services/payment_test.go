package services

import (
	"testing"
	"time"

	"MediCareHub/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC)

	assert.Equal(t, "TXN2026090114300512", GenerateTransactionID(12, now))
	assert.Equal(t, "TXN202609011430057", GenerateTransactionID(7, now))
}

func TestGenerateReceiptPDF(t *testing.T) {
	payment := &models.Payment{
		ID:            1,
		AppointmentID: 12,
		PatientID:     7,
		Amount:        500,
		TransactionID: "TXN2026090114300512",
		Status:        models.PaymentStatusCompleted,
		CreatedAt:     time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC),
	}
	appointment := &models.Appointment{ID: 12, DoctorID: 3, PatientID: 7, Date: "2026-09-01", Time: "10:30", Fee: 500}
	doctor := &models.Doctor{ID: 3, Name: "Dr. Meera Nair", Specialty: "Cardiology", ConsultationFee: 500}
	patient := &models.Patient{ID: 7, Name: "Arun Kumar"}

	pdf, err := GenerateReceiptPDF(payment, appointment, doctor, patient)

	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
