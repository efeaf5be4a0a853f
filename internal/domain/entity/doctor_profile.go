package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data.
// Appointments reference the profile id, not the user id.
type DoctorProfile struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty     string    `gorm:"type:varchar(100);index" json:"specialty,omitempty"`
	Age           *int      `gorm:"type:int" json:"age,omitempty"`
	Gender        string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	Bio           string    `gorm:"type:text" json:"bio,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// DoctorFilter is a domain-level filter for querying the doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialty string // Filter by specialty (ILIKE substring)
	Name      string // Filter by doctor full name (ILIKE substring)
}
