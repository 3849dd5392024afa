package handler

import (
	"encoding/json"
	"net/http"

	"go-dental-estimator/internal/delivery/dto"
	"go-dental-estimator/internal/usecase"
	"go-dental-estimator/pkg/response"
	"go-dental-estimator/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// IssueToken exchanges the admin secret for a catalog administration token.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.IssueAdminToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAdminSecret:
			response.Unauthorized(w, "Invalid admin secret")
		default:
			response.InternalServerError(w, "Failed to issue token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token issued successfully", token)
}
