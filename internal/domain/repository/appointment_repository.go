package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error)
	// UpdateStatus performs a compare-and-swap on the version column.
	// Returns affected rows: 0 means the row vanished or a concurrent update
	// bumped the version first.
	UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus, version int) (int64, error)
}
