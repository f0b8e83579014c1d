package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/locations"
	"github.com/opencivic/ward-survey/middleware"
	"github.com/opencivic/ward-survey/models"
)

type MasterHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMasterHandler(db *sql.DB, cfg cliparse.Config) *MasterHandler {
	return &MasterHandler{db: db, cfg: cfg}
}

const propertyColumns = `
	id, org_name, zone_id, zone_name, ward_id, ward_name, area_id, area_name,
	loc_id, locality_name, street_id, street_name, assessment_no, door_no,
	owner_name, mobile_number, build_area, usage
`

func scanProperty(rows *sql.Rows) (models.Property, error) {
	var p models.Property
	var mobile, area, usage sql.NullString
	err := rows.Scan(
		&p.ID, &p.OrgName, &p.ZoneID, &p.ZoneName, &p.WardID, &p.WardName,
		&p.AreaID, &p.AreaName, &p.LocID, &p.LocalityName, &p.StreetID,
		&p.StreetName, &p.AssessmentNo, &p.DoorNo, &p.OwnerName,
		&mobile, &area, &usage,
	)
	p.MobileNumber = mobile.String
	p.BuildArea = area.String
	p.Usage = usage.String
	return p, err
}

func (h *MasterHandler) queryProperties(query string, args ...interface{}) ([]models.Property, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// distinctOptions deduplicates id/name pairs preserving first-seen order,
// which keeps dropdown contents deterministic.
func distinctOptions(properties []models.Property, pick func(models.Property) models.LocationOption) []models.LocationOption {
	seen := make(map[string]bool)
	options := []models.LocationOption{}
	for _, p := range properties {
		opt := pick(p)
		if opt.ID == "" || seen[opt.ID] {
			continue
		}
		seen[opt.ID] = true
		options = append(options, opt)
	}
	return options
}

// GetWards handles GET /master/{org}
func (h *MasterHandler) GetWards(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	if org == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org is required")
		return
	}

	properties, err := h.queryProperties(`
		SELECT `+propertyColumns+` FROM property WHERE org_name = $1 ORDER BY id
	`, org)
	if err != nil {
		slog.Error("failed to query wards", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options := distinctOptions(properties, func(p models.Property) models.LocationOption {
		return models.LocationOption{ID: p.WardID, Name: p.WardName}
	})
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{Data: options})
}

// GetAreas handles GET /master/{org}/{wardId}
// An unknown ward yields an empty option list, not an error.
func (h *MasterHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	wardID := r.PathValue("wardId")
	if org == "" || wardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org and wardId are required")
		return
	}

	properties, err := h.queryProperties(`
		SELECT `+propertyColumns+` FROM property
		WHERE org_name = $1 AND ward_id = $2 ORDER BY id
	`, org, wardID)
	if err != nil {
		slog.Error("failed to query areas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options := distinctOptions(properties, func(p models.Property) models.LocationOption {
		return models.LocationOption{ID: p.AreaID, Name: p.AreaName}
	})
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{Data: options})
}

// GetLocalities handles GET /master/{org}/{wardId}/{areaId}
func (h *MasterHandler) GetLocalities(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	wardID := r.PathValue("wardId")
	areaID := r.PathValue("areaId")
	if org == "" || wardID == "" || areaID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org, wardId and areaId are required")
		return
	}

	properties, err := h.queryProperties(`
		SELECT `+propertyColumns+` FROM property
		WHERE org_name = $1 AND ward_id = $2 AND area_id = $3 ORDER BY id
	`, org, wardID, areaID)
	if err != nil {
		slog.Error("failed to query localities", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options := distinctOptions(properties, func(p models.Property) models.LocationOption {
		return models.LocationOption{ID: p.LocID, Name: p.LocalityName}
	})
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{Data: options})
}

// GetStreets handles GET /master/{org}/{wardId}/{areaId}/{localityId}
func (h *MasterHandler) GetStreets(w http.ResponseWriter, r *http.Request) {
	org := r.PathValue("org")
	wardID := r.PathValue("wardId")
	areaID := r.PathValue("areaId")
	localityID := r.PathValue("localityId")
	if org == "" || wardID == "" || areaID == "" || localityID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org, wardId, areaId and localityId are required")
		return
	}

	properties, err := h.queryProperties(`
		SELECT `+propertyColumns+` FROM property
		WHERE org_name = $1 AND ward_id = $2 AND area_id = $3 AND loc_id = $4 ORDER BY id
	`, org, wardID, areaID, localityID)
	if err != nil {
		slog.Error("failed to query streets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options := distinctOptions(properties, func(p models.Property) models.LocationOption {
		return models.LocationOption{ID: p.StreetID, Name: p.StreetName}
	})
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{Data: options})
}

// SearchAssets handles GET /asset
// Accepts either id filters (ward_id, area_id, loc_id, street_id) or name
// filters (ward, area, locality, street); name comparison is trimmed and
// case-insensitive.
func (h *MasterHandler) SearchAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	org := q.Get("org_name")
	if org == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "org_name is required")
		return
	}

	query := `SELECT ` + propertyColumns + ` FROM property WHERE org_name = $1`
	args := []interface{}{org}
	n := 1
	for _, f := range []struct{ column, param string }{
		{"ward_id", "ward_id"},
		{"area_id", "area_id"},
		{"loc_id", "loc_id"},
		{"street_id", "street_id"},
	} {
		if v := q.Get(f.param); v != "" {
			n++
			query += " AND " + f.column + " = $" + strconv.Itoa(n)
			args = append(args, v)
		}
	}
	query += " ORDER BY id"

	properties, err := h.queryProperties(query, args...)
	if err != nil {
		slog.Error("failed to search assets", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Name-based narrowing happens in Go so matching stays trimmed and
	// case-insensitive across both database drivers
	sel := locations.Selection{
		Ward:     q.Get("ward"),
		Area:     q.Get("area"),
		Locality: q.Get("locality"),
		Street:   q.Get("street"),
	}
	if sel != (locations.Selection{}) {
		filtered := []models.Property{}
		for _, p := range properties {
			rec := locations.Record{
				WardName:     p.WardName,
				AreaName:     p.AreaName,
				LocalityName: p.LocalityName,
				StreetName:   p.StreetName,
			}
			if locations.Match(rec, sel) {
				filtered = append(filtered, p)
			}
		}
		properties = filtered
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssetSearchResponse{Data: properties})
}

// GetAssetDetail handles GET /asset/detail/{id}
func (h *MasterHandler) GetAssetDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	properties, err := h.queryProperties(`
		SELECT `+propertyColumns+` FROM property WHERE id = $1
	`, id)
	if err != nil {
		slog.Error("failed to query asset", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(properties) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Property not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AssetDetailResponse{Data: properties[0]})
}
