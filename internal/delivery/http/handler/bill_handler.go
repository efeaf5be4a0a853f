package handler

import (
	"net/http"

	"hospital-management-system/internal/usecase"
	"hospital-management-system/pkg/response"
)

type BillHandler struct {
	billUsecase usecase.BillUsecase
}

func NewBillHandler(billUsecase usecase.BillUsecase) *BillHandler {
	return &BillHandler{
		billUsecase: billUsecase,
	}
}

func (h *BillHandler) GetMyBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUsecase.GetMyBills(r.Context())
	if err != nil {
		if err == usecase.ErrPatientProfileNotFound {
			response.NotFound(w, "Patient profile not found")
			return
		}
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}
