package dto

import "github.com/google/uuid"

// Request DTOs

type CreateDoctorRequest struct {
	FullName      string `json:"full_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=6"`
	Specialty     string `json:"specialty" validate:"omitempty"`
	Age           *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender        string `json:"gender" validate:"omitempty"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
	Bio           string `json:"bio" validate:"omitempty"`
}

// UpdateDoctorRequest enumerates every field an admin may change. Unknown
// JSON keys are never forwarded to storage.
type UpdateDoctorRequest struct {
	FullName      string `json:"full_name" validate:"omitempty,min=2"`
	Email         string `json:"email" validate:"omitempty,email"`
	Specialty     string `json:"specialty" validate:"omitempty"`
	Age           *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender        string `json:"gender" validate:"omitempty"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
	Bio           string `json:"bio" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID            int       `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Specialty     string    `json:"specialty,omitempty"`
	Age           *int      `json:"age,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Bio           string    `json:"bio,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
