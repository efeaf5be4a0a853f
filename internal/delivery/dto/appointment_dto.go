package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID int    `json:"doctor_id" validate:"required,gt=0"`
	Date     string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	TimeSlot string `json:"time_slot" validate:"required"`
	Reason   string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          int       `json:"id"`
	PatientID   int       `json:"patient_id"`
	DoctorID    int       `json:"doctor_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Specialty   string    `json:"specialty,omitempty"`
	Date        string    `json:"date"` // Format: YYYY-MM-DD
	TimeSlot    string    `json:"time_slot"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
