package models

import "time"

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

type Payment struct {
	ID            int        `json:"id" bson:"id"`
	AppointmentID int        `json:"appointmentId" bson:"appointmentId"`
	PatientID     int        `json:"patientId" bson:"patientId"`
	Amount        float64    `json:"amount" bson:"amount"`
	PaymentMethod string     `json:"paymentMethod" bson:"paymentMethod"`
	Status        string     `json:"status" bson:"status"`
	TransactionID string     `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	GatewayRef    string     `json:"gatewayRef,omitempty" bson:"gatewayRef,omitempty"`
	Description   string     `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}
