package repository

import (
	"context"
	"errors"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorProfileRepository struct {
	db *gorm.DB
}

func NewDoctorProfileRepository(db *gorm.DB) domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{db: db}
}

func (r *doctorProfileRepository) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(ctx context.Context, id int) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	query := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Preload("User")

	if filter != nil {
		if filter.Specialty != "" {
			query = query.Where("doctor_profiles.specialty ILIKE ?", "%"+filter.Specialty+"%")
		}
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
	}

	var profiles []entity.DoctorProfile
	err := query.Order("doctor_profiles.id").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error
}

// UpdateWithUser saves the profile and the backing credential in one
// transaction. An email conflict on the credential rolls back the profile
// changes as well, so an admin update never lands partially.
func (r *doctorProfileRepository) UpdateWithUser(ctx context.Context, profile *entity.DoctorProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(profile).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&profile.User).Error
	})
}

// DeleteCascade removes the doctor's appointments, the profile row and the
// backing credential in one transaction. A failure at any step rolls back
// everything, so no orphaned credential or dangling appointment survives.
func (r *doctorProfileRepository) DeleteCascade(ctx context.Context, profile *entity.DoctorProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"appointment_id IN (?)",
			tx.Model(&entity.Appointment{}).Select("id").Where("doctor_id = ?", profile.ID),
		).Delete(&entity.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("doctor_id = ?", profile.ID).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", profile.ID).Delete(&entity.DoctorProfile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", profile.UserID).Delete(&entity.User{}).Error
	})
}
