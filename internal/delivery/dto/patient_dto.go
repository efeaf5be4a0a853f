package dto

import "github.com/google/uuid"

// Request DTOs

// UpdatePatientRequest enumerates every field an admin may change.
type UpdatePatientRequest struct {
	FullName      string `json:"full_name" validate:"omitempty,min=2"`
	Email         string `json:"email" validate:"omitempty,email"`
	BloodGroup    string `json:"blood_group" validate:"omitempty,max=5"`
	Address       string `json:"address" validate:"omitempty"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientResponse struct {
	ID            int       `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	BloodGroup    string    `json:"blood_group,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
