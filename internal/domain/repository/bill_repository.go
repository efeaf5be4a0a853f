package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"
)

type BillRepository interface {
	FindByPatientID(ctx context.Context, patientID int) ([]entity.Bill, error)
}
