package dto

// UpdateOwnProfileRequest carries the union of per-role self-service fields.
// The usecase applies only the subset whitelisted for the caller's role;
// anything else is ignored, not merged.
type UpdateOwnProfileRequest struct {
	// Doctor fields
	Specialty string `json:"specialty" validate:"omitempty"`
	Age       *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender    string `json:"gender" validate:"omitempty"`
	Bio       string `json:"bio" validate:"omitempty"`

	// Patient fields
	BloodGroup string `json:"blood_group" validate:"omitempty,max=5"`
	Address    string `json:"address" validate:"omitempty"`

	// Shared
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
}

// ProfileResponse is role-dispatched: exactly one of the profile fields is
// set for doctors and patients; admins carry only the role.
type ProfileResponse struct {
	Role    string           `json:"role"`
	Doctor  *DoctorResponse  `json:"doctor_profile,omitempty"`
	Patient *PatientResponse `json:"patient_profile,omitempty"`
}
