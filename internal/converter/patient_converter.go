package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FullName:      profile.User.FullName,
		Email:         profile.User.Email,
		BloodGroup:    profile.BloodGroup,
		Address:       profile.Address,
		ContactNumber: profile.ContactNumber,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
