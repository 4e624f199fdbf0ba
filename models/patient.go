package models

import "time"

type Patient struct {
	ID                    int        `json:"id" bson:"id"`
	UserID                int        `json:"userId" bson:"userId"`
	Name                  string     `json:"name" bson:"name"`
	Email                 string     `json:"email" bson:"email"`
	Phone                 string     `json:"phone" bson:"phone"`
	Birthdate             string     `json:"birthdate,omitempty" bson:"birthdate,omitempty"`
	Address               string     `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact      string     `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	EmergencyContactPhone string     `json:"emergencyContactPhone,omitempty" bson:"emergencyContactPhone,omitempty"`
	MedicalHistory        string     `json:"medicalHistory,omitempty" bson:"medicalHistory,omitempty"`
	Allergies             string     `json:"allergies,omitempty" bson:"allergies,omitempty"`
	BloodType             string     `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	IsActive              bool       `json:"isActive" bson:"isActive"`
	CreatedAt             time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
