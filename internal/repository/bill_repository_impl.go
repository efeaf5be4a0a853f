package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"
	domainRepo "hospital-management-system/internal/domain/repository"

	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Appointment.Doctor.User").
		Where("patient_id = ?", patientID).
		Order("issue_date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
