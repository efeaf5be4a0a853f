package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus represents the payment status of a bill
type BillStatus string

const (
	BillStatusPaid   BillStatus = "paid"
	BillStatusUnpaid BillStatus = "unpaid"
)

// Bill is a read-only ledger entry tied to an appointment.
// Bills are created out-of-band; the API only exposes owner-scoped reads.
type Bill struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int             `gorm:"not null;index" json:"patient_id"`
	AppointmentID int             `gorm:"not null;index" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        BillStatus      `gorm:"type:varchar(10);not null;default:'unpaid'" json:"status"`
	IssueDate     time.Time       `gorm:"type:date;not null" json:"issue_date"`
	DueDate       time.Time       `gorm:"type:date;not null" json:"due_date"`

	// Relationships
	Patient     PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment Appointment    `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Bill) TableName() string {
	return "bills"
}

// IsPaid checks if the bill has been settled
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}
