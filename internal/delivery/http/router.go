package http

import (
	"net/http"

	"go-dental-estimator/internal/delivery/http/handler"
	"go-dental-estimator/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	estimateHandler     *handler.EstimateHandler
	catalogHandler      *handler.CatalogHandler
	authHandler         *handler.AuthHandler
	adminAuthMiddleware *middleware.AdminAuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	estimateHandler *handler.EstimateHandler,
	catalogHandler *handler.CatalogHandler,
	authHandler *handler.AuthHandler,
	adminAuthMiddleware *middleware.AdminAuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		estimateHandler:     estimateHandler,
		catalogHandler:      catalogHandler,
		authHandler:         authHandler,
		adminAuthMiddleware: adminAuthMiddleware,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Catalog browsing (public)
	api.HandleFunc("/procedures", r.catalogHandler.GetProcedures).Methods(http.MethodGet)
	api.HandleFunc("/procedures/primary", r.catalogHandler.GetPrimaryProcedures).Methods(http.MethodGet)
	api.HandleFunc("/procedures/{name}/secondary", r.catalogHandler.GetSecondaryProcedures).Methods(http.MethodGet)
	api.HandleFunc("/providers", r.catalogHandler.GetProviders).Methods(http.MethodGet)
	api.HandleFunc("/mitigating-factors", r.catalogHandler.GetMitigatingFactors).Methods(http.MethodGet)

	// Estimation (public)
	api.HandleFunc("/estimates", r.estimateHandler.CreateEstimate).Methods(http.MethodPost)

	// Auth (public)
	api.HandleFunc("/auth/token", r.authHandler.IssueToken).Methods(http.MethodPost)

	// Admin routes (protected - admin token only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.adminAuthMiddleware.Authenticate)
	admin.HandleFunc("/catalog/reload", r.catalogHandler.ReloadCatalog).Methods(http.MethodPost)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
