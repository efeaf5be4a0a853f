package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
	"hospital-management-system/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// GetMyAppointments lists the appointments booked by the calling patient.
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		if err == usecase.ErrPatientProfileNotFound {
			response.NotFound(w, "Patient profile not found")
			return
		}
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAppointmentsForMe lists the appointments assigned to the calling doctor.
func (h *AppointmentHandler) GetAppointmentsForMe(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointmentsForMe(r.Context())
	if err != nil {
		if err == usecase.ErrDoctorProfileNotFound {
			response.NotFound(w, "Doctor profile not found")
			return
		}
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, expected YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAssignedDoctor:
			response.Forbidden(w, "You are not assigned to this appointment")
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrInvalidStatus:
			response.BadRequest(w, "Invalid appointment status")
		case usecase.ErrAppointmentConflict:
			response.Conflict(w, "Appointment was modified concurrently, retry")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
