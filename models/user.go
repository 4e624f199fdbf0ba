package models

import "time"

type User struct {
	ID            int        `json:"id" bson:"id"`
	Email         string     `json:"email" bson:"email"`
	PasswordHash  string     `json:"-" bson:"passwordHash"`
	Role          string     `json:"role" bson:"role"`
	Name          string     `json:"name" bson:"name"`
	DateOfBirth   string     `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	ContactNumber string     `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Gender        string     `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodGroup    string     `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	Address       string     `json:"address,omitempty" bson:"address,omitempty"`
	IsActive      bool       `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
