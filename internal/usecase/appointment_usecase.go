package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-management-system/internal/converter"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/delivery/http/middleware"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"
	"hospital-management-system/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNotAssignedDoctor   = errors.New("you are not the doctor assigned to this appointment")
	ErrAppointmentConflict = errors.New("appointment was modified concurrently")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	// GetMyAppointments lists the calling patient's appointments.
	GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	// GetAppointmentsForMe lists the calling doctor's appointments.
	GetAppointmentsForMe(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	patientProfileRepo repository.PatientProfileRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	auditService       service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientProfileRepo repository.PatientProfileRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:                log,
		appointmentRepo:    appointmentRepo,
		patientProfileRepo: patientProfileRepo,
		doctorProfileRepo:  doctorProfileRepo,
		auditService:       auditService,
	}
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	patient, err := u.patientProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsForMe(ctx context.Context) (*dto.AppointmentListResponse, error) {
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

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CreateAppointment books a visit for the calling patient. The status is
// always pending at creation; a client-supplied status is never accepted.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}

	patient, err := u.patientProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientProfileNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	doctor, err := u.doctorProfileRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Reason:    req.Reason,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	// Reload with patient and doctor names for the response
	full, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(full), nil
}

// UpdateStatus applies a status transition. Callers with the doctor role must
// own the appointment; admins bypass the ownership check. The write is a
// compare-and-swap on the version column so concurrent transitions cannot
// silently overwrite each other.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errMissingIdentity
	}
	role, _ := middleware.GetRoleFromContext(ctx)

	status := entity.AppointmentStatus(req.Status)
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if role == entity.RoleDoctor {
		doctor, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorProfileNotFound
		}
		if appointment.DoctorID != doctor.ID {
			return nil, ErrNotAssignedDoctor
		}
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, id, status, appointment.Version)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentConflict
	}

	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionAppointmentStatus, "appointment", strconv.Itoa(id), string(appointment.Status), string(status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	updated, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		appointment.Status = status
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(updated), nil
}
