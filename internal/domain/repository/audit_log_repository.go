package repository

import (
	"context"

	"hospital-management-system/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
	FindByID(ctx context.Context, id int64) (*entity.AuditLog, error)
}
