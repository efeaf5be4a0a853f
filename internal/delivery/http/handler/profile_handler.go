package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
	"hospital-management-system/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileUsecase.GetOwnProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *ProfileHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOwnProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateOwnProfile(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrAdminHasNoProfile:
			response.Forbidden(w, "Admins have no editable profile")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
