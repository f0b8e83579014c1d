package router

import (
	"database/sql"
	"net/http"

	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/handlers"
	"github.com/opencivic/ward-survey/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	masterHandler := handlers.NewMasterHandler(db, cfg)
	surveyHandler := handlers.NewSurveyHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/v1/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/v1/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /api/v1/me", middleware.WithLogging(middleware.WithAuth(db, authHandler.Me)))

	// Location cascade and property lookup
	mux.HandleFunc("GET /master/{org}", middleware.WithLogging(middleware.WithAuth(db, masterHandler.GetWards)))
	mux.HandleFunc("GET /master/{org}/{wardId}", middleware.WithLogging(middleware.WithAuth(db, masterHandler.GetAreas)))
	mux.HandleFunc("GET /master/{org}/{wardId}/{areaId}", middleware.WithLogging(middleware.WithAuth(db, masterHandler.GetLocalities)))
	mux.HandleFunc("GET /master/{org}/{wardId}/{areaId}/{localityId}", middleware.WithLogging(middleware.WithAuth(db, masterHandler.GetStreets)))
	mux.HandleFunc("GET /asset", middleware.WithLogging(middleware.WithAuth(db, masterHandler.SearchAssets)))
	mux.HandleFunc("GET /asset/detail/{id}", middleware.WithLogging(middleware.WithAuth(db, masterHandler.GetAssetDetail)))

	// Field survey drafts
	mux.HandleFunc("POST /survey/drafts", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.CreateDraft)))
	mux.HandleFunc("GET /survey/drafts/{id}", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.GetDraft)))
	mux.HandleFunc("POST /survey/drafts/{id}/next", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.NextStep)))
	mux.HandleFunc("POST /survey/drafts/{id}/back", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.BackStep)))
	mux.HandleFunc("POST /survey/drafts/{id}/submit", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.SubmitDraft)))
	mux.HandleFunc("DELETE /survey/drafts/{id}", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.DiscardDraft)))

	// Property verification
	mux.HandleFunc("POST /survey", middleware.WithLogging(middleware.WithAuth(db, surveyHandler.SubmitVerification)))

	// Dashboard
	mux.HandleFunc("GET /dashboard/summary", middleware.WithLogging(middleware.WithAuth(db, dashboardHandler.GetSummary)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ward-survey API v1"))
	})

	return mux
}
