package dto

import "github.com/shopspring/decimal"

// Response DTOs. Bills have no write surface; they are created out-of-band.

type BillResponse struct {
	ID              int             `json:"id"`
	AppointmentID   int             `json:"appointment_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	IssueDate       string          `json:"issue_date"` // Format: YYYY-MM-DD
	DueDate         string          `json:"due_date"`   // Format: YYYY-MM-DD
	DoctorName      string          `json:"doctor_name,omitempty"`
	AppointmentDate string          `json:"appointment_date,omitempty"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
