package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/opencivic/ward-survey/auth"
	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/middleware"
	"github.com/opencivic/ward-survey/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /api/v1/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill in all fields")
		return
	}

	var userID, passwordHash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM app_user WHERE username = $1
	`, req.Username).Scan(&userID, &passwordHash)
	if err == sql.ErrNoRows {
		slog.Warn("login failed", "username", req.Username, "client_ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !auth.CheckPassword(passwordHash, req.Password) {
		slog.Warn("login failed", "username", req.Username, "client_ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.CreateSession(h.db, userID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	// Resolve the freshly issued session for profile and ward data
	user, err := auth.ValidateSession(h.db, token, time.Now())
	if err != nil {
		slog.Error("failed to load session user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("operator logged in", "username", user.Username, "client_ip", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Data: models.UserSession{
			AuthToken: token,
			Name:      user.Name,
			OrgName:   user.OrgName,
			Wards:     user.Wards,
		},
	})
}

// Logout handles POST /api/v1/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := auth.ParseAuthorization(r.Header.Get("Authorization"))

	if err := auth.DeleteSession(h.db, token); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}

// Me handles GET /api/v1/me
// Returns the authenticated operator's profile for the header component.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}
