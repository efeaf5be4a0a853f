package usecase

import (
	"context"
	"errors"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

type AuditLogUsecase interface {
	// ListAuditLogs pages through the trail newest first. Page is 1-based.
	ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, int64, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	logs, total, err := u.auditLogRepo.FindAll(ctx, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, 0, err
	}

	return &dto.AuditLogListResponse{Logs: converter.AuditLogsToResponses(logs)}, total, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
