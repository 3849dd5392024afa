package handler

import (
	"net/http"

	"go-dental-estimator/internal/usecase"
	"go-dental-estimator/pkg/response"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

func (h *CatalogHandler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.catalogUsecase.ListProcedures(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		default:
			response.InternalServerError(w, "Failed to get procedures")
		}
		return
	}

	response.Success(w, http.StatusOK, "Procedures retrieved successfully", procedures)
}

func (h *CatalogHandler) GetPrimaryProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.catalogUsecase.ListPrimaryProcedures(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		default:
			response.InternalServerError(w, "Failed to get primary procedures")
		}
		return
	}

	response.Success(w, http.StatusOK, "Primary procedures retrieved successfully", procedures)
}

func (h *CatalogHandler) GetSecondaryProcedures(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	primary := vars["name"]
	provider := r.URL.Query().Get("provider")

	procedures, err := h.catalogUsecase.ListSecondaryProcedures(r.Context(), primary, provider)
	if err != nil {
		switch err {
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		case usecase.ErrUnknownProcedure:
			response.NotFound(w, "Procedure not found")
		default:
			response.InternalServerError(w, "Failed to get secondary procedures")
		}
		return
	}

	response.Success(w, http.StatusOK, "Secondary procedures retrieved successfully", procedures)
}

func (h *CatalogHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.catalogUsecase.ListProviders(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		default:
			response.InternalServerError(w, "Failed to get providers")
		}
		return
	}

	response.Success(w, http.StatusOK, "Providers retrieved successfully", providers)
}

func (h *CatalogHandler) GetMitigatingFactors(w http.ResponseWriter, r *http.Request) {
	factors, err := h.catalogUsecase.ListMitigatingFactors(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrCatalogNotLoaded:
			response.Error(w, http.StatusServiceUnavailable, "Procedure catalog is not loaded yet", nil)
		default:
			response.InternalServerError(w, "Failed to get mitigating factors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Mitigating factors retrieved successfully", factors)
}

func (h *CatalogHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogUsecase.Reload(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrCatalogEmpty:
			response.Error(w, http.StatusConflict, "Procedure catalog is empty", nil)
		default:
			response.InternalServerError(w, "Failed to reload catalog")
		}
		return
	}

	response.Success(w, http.StatusOK, "Catalog reloaded successfully", result)
}
