package usecase

import (
	"context"
	"testing"

	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditLogUsecase_ListAuditLogs(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		page           int
		limit          int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "defaults applied", page: 0, limit: 0, expectedLimit: 20, expectedOffset: 0},
		{name: "second page", page: 2, limit: 10, expectedLimit: 10, expectedOffset: 10},
		{name: "oversized limit clamped", page: 1, limit: 500, expectedLimit: 20, expectedOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditRepo := new(MockAuditLogRepository)
			auditRepo.On("FindAll", mock.Anything, tt.expectedLimit, tt.expectedOffset).Return([]entity.AuditLog{
				{ID: 1, UserID: &userID, Action: entity.AuditActionUserLogin},
			}, int64(35), nil)

			uc := NewAuditLogUsecase(newTestLogger(), auditRepo)
			result, total, err := uc.ListAuditLogs(context.Background(), tt.page, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, int64(35), total)
			assert.Len(t, result.Logs, 1)
			assert.Equal(t, entity.AuditActionUserLogin, result.Logs[0].Action)

			auditRepo.AssertExpectations(t)
		})
	}
}

func TestAuditLogUsecase_GetAuditLog(t *testing.T) {
	auditRepo := new(MockAuditLogRepository)
	auditRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	uc := NewAuditLogUsecase(newTestLogger(), auditRepo)
	result, err := uc.GetAuditLog(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAuditLogNotFound)
	assert.Nil(t, result)
	auditRepo.AssertExpectations(t)
}
