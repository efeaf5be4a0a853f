package dto

import "github.com/google/uuid"

// Request DTOs

// RegisterRequest covers all three roles; role defaults to patient.
// Role-specific fields are optional and only applied to the matching profile.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=patient doctor admin"`

	// Doctor fields
	Specialty string `json:"specialty" validate:"omitempty"`
	Age       *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender    string `json:"gender" validate:"omitempty"`
	Bio       string `json:"bio" validate:"omitempty"`

	// Patient fields
	BloodGroup string `json:"blood_group" validate:"omitempty"`
	Address    string `json:"address" validate:"omitempty"`

	// Shared profile field
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}
