package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorProfileRepository interface {
	// Create inserts the profile. When profile.User is populated the backing
	// credential is inserted in the same transaction via the association.
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	FindByID(ctx context.Context, id int) (*entity.DoctorProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error)
	Update(ctx context.Context, profile *entity.DoctorProfile) error
	// UpdateWithUser saves the profile and its credential in one transaction,
	// so a conflict on the credential rolls back the profile changes too.
	UpdateWithUser(ctx context.Context, profile *entity.DoctorProfile) error
	// DeleteCascade removes the profile, its appointments and the linked
	// credential in one transaction.
	DeleteCascade(ctx context.Context, profile *entity.DoctorProfile) error
}
