package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FullName:      profile.User.FullName,
		Email:         profile.User.Email,
		Specialty:     profile.Specialty,
		Age:           profile.Age,
		Gender:        profile.Gender,
		ContactNumber: profile.ContactNumber,
		Bio:           profile.Bio,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
