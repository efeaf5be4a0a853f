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

type patientProfileRepository struct {
	db *gorm.DB
}

func NewPatientProfileRepository(db *gorm.DB) domainRepo.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *patientProfileRepository) FindByID(ctx context.Context, id int) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *patientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN appointments ON appointments.patient_id = patient_profiles.id").
		Where("appointments.doctor_id = ?", doctorID).
		Distinct("patient_profiles.*").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *patientProfileRepository) Update(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error
}

// UpdateWithUser saves the profile and the backing credential in one
// transaction. An email conflict on the credential rolls back the profile
// changes as well, so an admin update never lands partially.
func (r *patientProfileRepository) UpdateWithUser(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(profile).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&profile.User).Error
	})
}

// DeleteCascade removes the patient's bills, appointments, the profile row
// and the backing credential in one transaction.
func (r *patientProfileRepository) DeleteCascade(ctx context.Context, profile *entity.PatientProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", profile.ID).Delete(&entity.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("patient_id = ?", profile.ID).Delete(&entity.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", profile.ID).Delete(&entity.PatientProfile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", profile.UserID).Delete(&entity.User{}).Error
	})
}
