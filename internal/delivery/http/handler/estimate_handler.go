package handler

import (
	"encoding/json"
	"net/http"

	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/usecase"
	"go-dental-estimator/pkg/response"
	"go-dental-estimator/pkg/validator"
)

type EstimateHandler struct {
	estimateUsecase usecase.EstimateUsecase
	validator       *validator.CustomValidator
}

func NewEstimateHandler(estimateUsecase usecase.EstimateUsecase, validator *validator.CustomValidator) *EstimateHandler {
	return &EstimateHandler{
		estimateUsecase: estimateUsecase,
		validator:       validator,
	}
}

func (h *EstimateHandler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	estimate, err := h.estimateUsecase.Estimate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNoProcedures:
			response.Error(w, http.StatusBadRequest, "At least one procedure is required", nil)
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		default:
			response.InternalServerError(w, "Failed to calculate estimate")
		}
		return
	}

	response.Success(w, http.StatusOK, "Estimate calculated successfully", estimate)
}
