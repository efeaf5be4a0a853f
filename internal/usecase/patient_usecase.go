package usecase

import (
	"context"
	"errors"
	"strconv"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"
	"hospital-management-system/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	// ListPatientsForDoctor returns the patients that have an appointment
	// with the calling doctor.
	ListPatientsForDoctor(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) error
}

type patientUsecase struct {
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	auditService       service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:                log,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		auditService:       auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	profiles, err := u.patientProfileRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patient profiles: %+v", err)
		return nil, err
	}

	patients := converter.PatientProfilesToResponses(profiles)

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) ListPatientsForDoctor(ctx context.Context) (*dto.PatientListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}

	profiles, err := u.patientProfileRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find patients for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	patients := converter.PatientProfilesToResponses(profiles)

	return &dto.PatientListResponse{
		Patients: patients,
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	profile, err := u.patientProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientProfileToResponse(profile)

	if req.BloodGroup != "" {
		profile.BloodGroup = req.BloodGroup
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.ContactNumber != "" {
		profile.ContactNumber = req.ContactNumber
	}

	if req.FullName != "" {
		profile.User.FullName = req.FullName
	}
	if req.Email != "" {
		profile.User.Email = req.Email
	}

	// Profile and credential changes land together or not at all.
	var updateErr error
	if req.FullName != "" || req.Email != "" {
		updateErr = u.patientProfileRepo.UpdateWithUser(ctx, profile)
	} else {
		updateErr = u.patientProfileRepo.Update(ctx, profile)
	}
	if updateErr != nil {
		if isDuplicateKeyError(updateErr, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", updateErr)
		return nil, updateErr
	}

	newValue := converter.PatientProfileToResponse(profile)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionPatientUpdate, "patient_profile", strconv.Itoa(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// DeletePatient removes the profile, its appointments and bills, and the
// backing credential in one transaction. The original system cascaded the
// credential for doctors but not patients; both cascade here.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int) error {
	profile, err := u.patientProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrPatientNotFound
	}
	oldValue := converter.PatientProfileToResponse(profile)

	if err := u.patientProfileRepo.DeleteCascade(ctx, profile); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, &actorID, entity.AuditActionPatientDelete, "patient_profile", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
