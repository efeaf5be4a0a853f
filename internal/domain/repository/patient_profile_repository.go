package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientProfileRepository interface {
	// Create inserts the profile. When profile.User is populated the backing
	// credential is inserted in the same transaction via the association.
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByID(ctx context.Context, id int) (*entity.PatientProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAll(ctx context.Context) ([]entity.PatientProfile, error)
	// FindByDoctorID returns the distinct patients that have at least one
	// appointment with the given doctor profile.
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.PatientProfile, error)
	Update(ctx context.Context, profile *entity.PatientProfile) error
	// UpdateWithUser saves the profile and its credential in one transaction,
	// so a conflict on the credential rolls back the profile changes too.
	UpdateWithUser(ctx context.Context, profile *entity.PatientProfile) error
	// DeleteCascade removes the profile, its appointments and bills, and the
	// linked credential in one transaction.
	DeleteCascade(ctx context.Context, profile *entity.PatientProfile) error
}
