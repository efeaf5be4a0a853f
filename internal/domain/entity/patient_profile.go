package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BloodGroup    string    `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	Bills        []Bill        `gorm:"foreignKey:PatientID" json:"bills,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
