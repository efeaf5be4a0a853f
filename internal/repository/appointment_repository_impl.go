package repository

import (
	"context"
	"errors"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Doctor.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("date DESC, time_slot DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("date DESC, time_slot DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus sets the status only when the version still matches, bumping
// the version in the same statement. 0 affected rows means a concurrent
// writer got there first (or the row is gone).
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus, version int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]interface{}{
			"status":  status,
			"version": gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}
