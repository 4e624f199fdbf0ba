package models

import "time"

type Feedback struct {
	ID            int       `json:"id" bson:"id"`
	PatientID     int       `json:"patientId" bson:"patientId"`
	DoctorID      int       `json:"doctorId" bson:"doctorId"`
	AppointmentID int       `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Title         string    `json:"title,omitempty" bson:"title,omitempty"`
	Message       string    `json:"message" bson:"message"`
	Rating        int       `json:"rating" bson:"rating"`
	IsApproved    bool      `json:"isApproved" bson:"isApproved"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}
