package converter

import (
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	resp := &dto.BillResponse{
		ID:            bill.ID,
		AppointmentID: bill.AppointmentID,
		Amount:        bill.Amount,
		Status:        string(bill.Status),
		IssueDate:     bill.IssueDate.Format(dateLayout),
		DueDate:       bill.DueDate.Format(dateLayout),
	}

	if bill.Appointment.ID != 0 {
		resp.DoctorName = bill.Appointment.Doctor.User.FullName
		resp.AppointmentDate = bill.Appointment.Date.Format(dateLayout)
	}

	return resp
}

// BillsToResponses converts a slice of Bill entities to DTOs
func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i := range bills {
		responses[i] = *BillToResponse(&bills[i])
	}
	return responses
}
