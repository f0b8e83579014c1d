package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/opencivic/ward-survey/auth"
	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/middleware"
	"github.com/opencivic/ward-survey/models"
	"github.com/opencivic/ward-survey/survey"
)

// maxVerificationBody caps the verification payload; photos are inlined as
// base64 so the limit is generous.
const maxVerificationBody = 100 << 20

type SurveyHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	mu     sync.Mutex
	drafts map[string]*survey.Draft
}

func NewSurveyHandler(db *sql.DB, cfg cliparse.Config) *SurveyHandler {
	return &SurveyHandler{
		db:     db,
		cfg:    cfg,
		drafts: make(map[string]*survey.Draft),
	}
}

func (h *SurveyHandler) draft(id string) *survey.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.drafts[id]
}

// CreateDraft handles POST /survey/drafts
// Drafts live only in memory; nothing touches the database until submission.
func (h *SurveyHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate draft id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create draft")
		return
	}

	d := survey.NewDraft()
	h.mu.Lock()
	h.drafts[id] = d
	h.mu.Unlock()

	slog.Info("draft created", "draft_id", id)
	middleware.JSONResponse(w, http.StatusCreated, models.DraftResponse{
		DraftID: id,
		Step:    int(d.Step()),
		Fields:  d.Fields(),
	})
}

// GetDraft handles GET /survey/drafts/{id}
func (h *SurveyHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d := h.draft(id)
	if d == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DraftResponse{
		DraftID: id,
		Step:    int(d.Step()),
		Fields:  d.Fields(),
	})
}

// NextStep handles POST /survey/drafts/{id}/next
// The submitted fields are merged into the draft and the current step is
// validated; the draft only advances when every check passes.
func (h *SurveyHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d := h.draft(id)
	if d == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}

	var fields models.DraftFields
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// A geolocation failure blocks the coordinates step with the message
	// matched to the failure mode
	if fields.GeoErrorCode != 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, survey.GeoErrorMessage(fields.GeoErrorCode))
		return
	}

	errs, err := d.Next(fields)
	if errors.Is(err, survey.ErrFinalStep) {
		middleware.ErrorResponse(w, http.StatusConflict, "Draft is on the final step; submit it instead")
		return
	}

	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	middleware.JSONResponse(w, status, models.DraftResponse{
		DraftID: id,
		Step:    int(d.Step()),
		Fields:  d.Fields(),
		Errors:  errs,
	})
}

// BackStep handles POST /survey/drafts/{id}/back
// Going back never validates and never loses entered fields.
func (h *SurveyHandler) BackStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d := h.draft(id)
	if d == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}

	d.Back()
	middleware.JSONResponse(w, http.StatusOK, models.DraftResponse{
		DraftID: id,
		Step:    int(d.Step()),
		Fields:  d.Fields(),
	})
}

// DiscardDraft handles DELETE /survey/drafts/{id}
func (h *SurveyHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.mu.Lock()
	_, ok := h.drafts[id]
	delete(h.drafts, id)
	h.mu.Unlock()

	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}

	slog.Info("draft discarded", "draft_id", id)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Draft discarded"})
}

// SubmitDraft handles POST /survey/drafts/{id}/submit
// The draft must be on the final step. On a database failure the draft stays
// in memory and remains editable.
func (h *SurveyHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	d := h.draft(id)
	if d == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Draft not found")
		return
	}
	if d.Step() != survey.StepBuilding {
		middleware.ErrorResponse(w, http.StatusConflict, "Complete all steps before submitting")
		return
	}

	var fields models.DraftFields
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := d.Validate(fields); len(errs) > 0 {
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.DraftResponse{
			DraftID: id,
			Step:    int(d.Step()),
			Fields:  d.Fields(),
			Errors:  errs,
		})
		return
	}

	user := middleware.CurrentUser(r)
	f := d.Fields()
	surveyID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO field_survey (
			id, ward_name, street_name, locality_name, owner_name,
			phone_number, total_floors, latitude, longitude,
			building_usage, building_structure, submitted_by, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, surveyID, f.WardName, f.StreetName, f.LocalityName, f.OwnerName,
		f.PhoneNumber, f.TotalFloors, f.Latitude, f.Longitude,
		f.BuildingUsage, f.BuildingStructure, user.ID, time.Now())
	if err != nil {
		slog.Error("failed to insert field survey", "error", err, "draft_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save survey")
		return
	}

	d.MarkSubmitted()
	h.mu.Lock()
	delete(h.drafts, id)
	h.mu.Unlock()

	slog.Info("field survey submitted", "survey_id", surveyID, "user", user.Username)
	middleware.JSONResponse(w, http.StatusCreated, models.SubmitDraftResponse{
		SurveyID: surveyID,
		Message:  "Survey submitted successfully",
	})
}

// SubmitVerification handles POST /survey
// The verification and its photos are written in one transaction, so a
// failure part-way leaves no orphan rows.
func (h *SurveyHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVerificationBody)

	var req models.VerificationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge,
				"File size is too large. Please try with smaller images.")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AssetID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "asst_det_id is required")
		return
	}

	var prop models.Property
	err := h.db.QueryRow(`
		SELECT id, owner_name FROM property WHERE id = $1
	`, req.AssetID).Scan(&prop.ID, &prop.OwnerName)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		slog.Error("failed to query property", "error", err, "id", req.AssetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if errs := survey.ValidateVerification(req); len(errs) > 0 {
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
			Error:  "Validation failed",
			Errors: errs,
		})
		return
	}

	user := middleware.CurrentUser(r)
	now := time.Now()
	verificationID := uuid.NewString()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var taxID string
	hasTax := false
	if req.ProfTax != nil {
		hasTax = req.ProfTax.HasTax
		taxID = req.ProfTax.TaxID
	}

	_, err = tx.Exec(`
		INSERT INTO verification (
			id, property_id, owner_name, owner_verified, mobile, is_building,
			building_type, total_floors, prop_floor, roof_structure,
			floor_area, usage, current_usage, eb_number,
			has_prof_tax, prof_tax_id, submitted_by, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, verificationID, prop.ID, survey.ResolveOwnerName(req, prop),
		boolToInt(req.OwnerVerified), req.OwnerDet.Mobile, boolToInt(req.IsBuilding),
		req.StrDet.Type, req.StrDet.Floors, req.StrDet.PropFloor, req.StrDet.RoofStructure,
		req.Area, req.Usage, req.CurrentUsage, req.EBNumber,
		boolToInt(hasTax), taxID, user.ID, now)
	if err != nil {
		slog.Error("failed to insert verification", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save verification")
		return
	}

	for _, img := range req.Images {
		_, err = tx.Exec(`
			INSERT INTO verification_photo (id, verification_id, image_data, latitude, longitude, captured_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), verificationID, img.Data, img.Latitude, img.Longitude, now)
		if err != nil {
			slog.Error("failed to insert photo", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save verification")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit verification", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save verification")
		return
	}

	slog.Info("verification submitted",
		"verification_id", verificationID,
		"property_id", prop.ID,
		"photos", len(req.Images),
		"user", user.Username,
		"client_ip", middleware.GetClientIP(r))
	middleware.JSONResponse(w, http.StatusCreated, models.VerificationResponse{
		VerificationID: verificationID,
		Message:        "Verification submitted successfully",
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
