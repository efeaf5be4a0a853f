package usecase

import (
	"context"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type BillUsecase interface {
	// GetMyBills returns the calling patient's bills, newest first.
	GetMyBills(ctx context.Context) (*dto.BillListResponse, error)
}

type billUsecase struct {
	log                *logrus.Logger
	billRepo           repository.BillRepository
	patientProfileRepo repository.PatientProfileRepository
}

func NewBillUsecase(
	log *logrus.Logger,
	billRepo repository.BillRepository,
	patientProfileRepo repository.PatientProfileRepository,
) BillUsecase {
	return &billUsecase{
		log:                log,
		billRepo:           billRepo,
		patientProfileRepo: patientProfileRepo,
	}
}

func (u *billUsecase) GetMyBills(ctx context.Context) (*dto.BillListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	profile, err := u.patientProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	bills, err := u.billRepo.FindByPatientID(ctx, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to find bills for patient %d: %+v", profile.ID, err)
		return nil, err
	}

	return &dto.BillListResponse{Bills: converter.BillsToResponses(bills), Total: len(bills)}, nil
}
