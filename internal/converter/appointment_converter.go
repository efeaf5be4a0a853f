package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Patient/doctor names are filled only when the relations were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		PatientName: appointment.Patient.User.FullName,
		DoctorName:  appointment.Doctor.User.FullName,
		Specialty:   appointment.Doctor.Specialty,
		Date:        appointment.Date.Format(dateLayout),
		TimeSlot:    appointment.TimeSlot,
		Reason:      appointment.Reason,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
