package models

import "time"

// Appointment statuses. Cancelled and Completed are terminal.
const (
	StatusPending     = "Pending"
	StatusConfirmed   = "Confirmed"
	StatusCompleted   = "Completed"
	StatusCancelled   = "Cancelled"
	StatusRescheduled = "Rescheduled"
)

// Payment state carried on the appointment, written only by the payment service.
const (
	PaymentPending   = "Pending"
	PaymentPaid      = "Paid"
	PaymentCancelled = "Cancelled"
)

// Appointment holds one booked consultation. Date ("2006-01-02") and
// Time ("15:04") are independent fields, not a single timestamp.
// Fee is a snapshot of the doctor's consultation fee at booking time.
type Appointment struct {
	ID            int        `json:"id" bson:"id"`
	DoctorID      int        `json:"doctorId" bson:"doctorId"`
	PatientID     int        `json:"patientId" bson:"patientId"`
	Date          string     `json:"date" bson:"date"`
	Time          string     `json:"time" bson:"time"`
	Status        string     `json:"status" bson:"status"`
	PaymentStatus string     `json:"paymentStatus" bson:"paymentStatus"`
	Fee           float64    `json:"fee" bson:"fee"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Prescription  string     `json:"prescription,omitempty" bson:"prescription,omitempty"`
	Diagnosis     string     `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
