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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDoctorProfileNotFound signals a credential without its 1:1 profile
	// row. That is a data-integrity violation, surfaced as a hard 404, never
	// papered over with defaults.
	ErrDoctorProfileNotFound  = errors.New("doctor profile not found")
	ErrPatientProfileNotFound = errors.New("patient profile not found")
	// ErrAdminHasNoProfile rejects profile self-service for admins, which
	// have no role profile in this model.
	ErrAdminHasNoProfile = errors.New("admins have no editable profile")

	errMissingIdentity = errors.New("user not found in context")
)

type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context) (*dto.ProfileResponse, error)
	UpdateOwnProfile(ctx context.Context, req *dto.UpdateOwnProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	log                *logrus.Logger
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewProfileUsecase(
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		log:                log,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// GetOwnProfile resolves the caller's role from the session claims and loads
// the matching profile. Admins get a bare role payload.
func (u *profileUsecase) GetOwnProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	switch role {
	case entity.RoleDoctor:
		profile, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
			return nil, err
		}
		if profile == nil {
			return nil, ErrDoctorProfileNotFound
		}
		return &dto.ProfileResponse{Role: role, Doctor: converter.DoctorProfileToResponse(profile)}, nil
	case entity.RolePatient:
		profile, err := u.patientProfileRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
			return nil, err
		}
		if profile == nil {
			return nil, ErrPatientProfileNotFound
		}
		return &dto.ProfileResponse{Role: role, Patient: converter.PatientProfileToResponse(profile)}, nil
	default:
		return &dto.ProfileResponse{Role: entity.RoleAdmin}, nil
	}
}

// UpdateOwnProfile applies only the field subset whitelisted for the
// caller's role; all other submitted fields are ignored. Admins are rejected.
func (u *profileUsecase) UpdateOwnProfile(ctx context.Context, req *dto.UpdateOwnProfileRequest) (*dto.ProfileResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	switch role {
	case entity.RoleDoctor:
		return u.updateDoctorProfile(ctx, userID, req)
	case entity.RolePatient:
		return u.updatePatientProfile(ctx, userID, req)
	default:
		return nil, ErrAdminHasNoProfile
	}
}

func (u *profileUsecase) updateDoctorProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateOwnProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	changed := entity.JSON{}
	if req.Specialty != "" {
		profile.Specialty = req.Specialty
		changed["specialty"] = req.Specialty
	}
	if req.Age != nil {
		profile.Age = req.Age
		changed["age"] = strconv.Itoa(*req.Age)
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
		changed["gender"] = req.Gender
	}
	if req.ContactNumber != "" {
		profile.ContactNumber = req.ContactNumber
		changed["contact_number"] = req.ContactNumber
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
		changed["bio"] = req.Bio
	}

	if err := u.doctorProfileRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %d: %+v", profile.ID, err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, &userID, entity.AuditActionProfileUpdate, changed); err != nil {
		u.log.Warnf("Failed to audit profile update for user %s: %+v", userID, err)
	}

	return &dto.ProfileResponse{Role: entity.RoleDoctor, Doctor: converter.DoctorProfileToResponse(profile)}, nil
}

func (u *profileUsecase) updatePatientProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateOwnProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.patientProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientProfileNotFound
	}

	changed := entity.JSON{}
	if req.BloodGroup != "" {
		profile.BloodGroup = req.BloodGroup
		changed["blood_group"] = req.BloodGroup
	}
	if req.Address != "" {
		profile.Address = req.Address
		changed["address"] = req.Address
	}
	if req.ContactNumber != "" {
		profile.ContactNumber = req.ContactNumber
		changed["contact_number"] = req.ContactNumber
	}

	if err := u.patientProfileRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile %d: %+v", profile.ID, err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, &userID, entity.AuditActionProfileUpdate, changed); err != nil {
		u.log.Warnf("Failed to audit profile update for user %s: %+v", userID, err)
	}

	return &dto.ProfileResponse{Role: entity.RolePatient, Patient: converter.PatientProfileToResponse(profile)}, nil
}
