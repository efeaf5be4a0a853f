package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusRejected, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment represents one requested or confirmed visit.
// Version guards status updates against concurrent lost writes.
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int               `gorm:"not null;index" json:"patient_id"`
	DoctorID  int               `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null" json:"date"`
	TimeSlot  string            `gorm:"type:varchar(30);not null" json:"time_slot"`
	Reason    string            `gorm:"type:text" json:"reason,omitempty"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Version   int               `gorm:"not null;default:0" json:"version"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting a decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
