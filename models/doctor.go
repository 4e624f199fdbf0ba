package models

import "time"

type Doctor struct {
	ID              int        `json:"id" bson:"id"`
	UserID          int        `json:"userId" bson:"userId"`
	Name            string     `json:"name" bson:"name"`
	Specialty       string     `json:"specialty" bson:"specialty"`
	Qualifications  string     `json:"qualifications,omitempty" bson:"qualifications,omitempty"`
	LicenseNumber   string     `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	ConsultationFee float64    `json:"consultationFee" bson:"consultationFee"`
	ExperienceYears int        `json:"experienceYears" bson:"experienceYears"`
	Location        string     `json:"location,omitempty" bson:"location,omitempty"`
	Bio             string     `json:"bio,omitempty" bson:"bio,omitempty"`
	IsActive        bool       `json:"isActive" bson:"isActive"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
