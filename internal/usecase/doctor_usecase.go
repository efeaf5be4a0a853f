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
	"golang.org/x/crypto/bcrypt"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorUsecase struct {
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

// CreateDoctor is the admin-initiated creation path: credential and profile
// are inserted together through the association, in one transaction.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		Specialty:     req.Specialty,
		Age:           req.Age,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Bio:           req.Bio,
		User: entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.FullName,
			Role:     entity.RoleDoctor,
		},
	}

	if err := u.doctorProfileRepo.Create(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &actorID, entity.AuditActionDoctorCreate, "doctor_profile", strconv.Itoa(profile.ID), converter.DoctorProfileToResponse(profile)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// ListDoctors backs the public directory; specialty and name are substring
// filters.
func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorProfileRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctor profiles: %+v", err)
		return nil, err
	}

	doctors := converter.DoctorProfilesToResponses(profiles)

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorProfileToResponse(profile)

	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.ContactNumber != "" {
		profile.ContactNumber = req.ContactNumber
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
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
		updateErr = u.doctorProfileRepo.UpdateWithUser(ctx, profile)
	} else {
		updateErr = u.doctorProfileRepo.Update(ctx, profile)
	}
	if updateErr != nil {
		if isDuplicateKeyError(updateErr, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update doctor: %+v", updateErr)
		return nil, updateErr
	}

	newValue := converter.DoctorProfileToResponse(profile)
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, &actorID, entity.AuditActionDoctorUpdate, "doctor_profile", strconv.Itoa(id), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// DeleteDoctor removes the profile, its appointments and the backing
// credential in one transaction.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) error {
	profile, err := u.doctorProfileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}
	oldValue := converter.DoctorProfileToResponse(profile)

	if err := u.doctorProfileRepo.DeleteCascade(ctx, profile); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, &actorID, entity.AuditActionDoctorDelete, "doctor_profile", strconv.Itoa(id), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
