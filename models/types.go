package models

import "time"

// Building type constants
const (
	BuildingApartment   = "apartment"
	BuildingRowHouse    = "row_house"
	BuildingIndependent = "independent"
)

// Building usage constants
const (
	UsageResidential = "residential"
	UsageCommercial  = "commercial"
	UsageMixed       = "mixed"
	UsageGovernment  = "government"
	UsageEducational = "educational"
)

// Roof structure constants
const (
	RoofRCC      = "RCC"
	RoofThatched = "THATCHED"
	RoofACSheet  = "AC-SHEET"
)

// Current usage of non-building parcels
const (
	ParcelParking    = "parking"
	ParcelGarden     = "garden"
	ParcelPlayground = "playground"
	ParcelVacant     = "vacant"
)

// MaxSurveyPhotos caps photo attachments per submission.
const MaxSurveyPhotos = 3

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type DraftFields struct {
	WardName          string `json:"ward_name"`
	StreetName        string `json:"street_name"`
	LocalityName      string `json:"locality_name"`
	OwnerName         string `json:"owner_name"`
	PhoneNumber       string `json:"phone_number"`
	TotalFloors       string `json:"total_floors"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
	GeoErrorCode      int    `json:"geo_error_code,omitempty"`
	BuildingUsage     string `json:"building_usage"`
	BuildingStructure string `json:"building_structure"`
}

// VerificationRequest is the single overlay payload POSTed for a property,
// preserving the portal's wire shape.
type VerificationRequest struct {
	AssetID       string          `json:"asst_det_id"`
	OwnerVerified bool            `json:"owner_verified"`
	OwnerDet      OwnerDet        `json:"owner_det"`
	IsBuilding    bool            `json:"is_building"`
	StrDet        StrDet          `json:"str_det"`
	Area          string          `json:"area"`
	Usage         string          `json:"usage"`
	CurrentUsage  string          `json:"current_usage"`
	EBNumber      string          `json:"eb_num"`
	ProfTax       *ProfTax        `json:"prof_tax,omitempty"`
	Images        []CapturedImage `json:"images"`
}

type OwnerDet struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type StrDet struct {
	Type          string `json:"type"`
	Floors        string `json:"floors"`
	PropFloor     string `json:"prop_floor"`
	RoofStructure string `json:"roof_structure"`
}

type ProfTax struct {
	HasTax bool   `json:"has_tax"`
	TaxID  string `json:"tax_id"`
}

type CapturedImage struct {
	Data      string `json:"data"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Response types

// LoginResponse mirrors the shape the portal stores under userData:
// the token lives at data.authToken.
type LoginResponse struct {
	Data UserSession `json:"data"`
}

type UserSession struct {
	AuthToken string `json:"authToken"`
	Name      string `json:"name"`
	OrgName   string `json:"org_name"`
	Wards     []Ward `json:"wards"`
}

type DraftResponse struct {
	DraftID string            `json:"draft_id"`
	Step    int               `json:"step"`
	Fields  DraftFields       `json:"fields"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type SubmitDraftResponse struct {
	SurveyID string `json:"survey_id"`
	Message  string `json:"message"`
}

type VerificationResponse struct {
	VerificationID string `json:"verification_id"`
	Message        string `json:"message"`
}

// LocationOption is one entry of a cascading dropdown.
type LocationOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type OptionsResponse struct {
	Data []LocationOption `json:"data"`
}

// ValidationErrorResponse reports per-field messages for a rejected payload.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

type AssetSearchResponse struct {
	Data []Property `json:"data"`
}

type AssetDetailResponse struct {
	Data Property `json:"data"`
}

// DashboardSummary carries precomputed counts plus display strings for the
// stat cards; DisplayValue uses comma grouping ("2,465").
type DashboardSummary struct {
	TotalCompleted int         `json:"total_completed"`
	TotalPending   int         `json:"total_pending"`
	MonthlyCount   int         `json:"monthly_count"`
	Last7DaysCount int         `json:"last7_days_count"`
	CompletionPct  string      `json:"completion_pct"`
	Cards          []StatCard  `json:"cards"`
	Daily          []DailyStat `json:"daily"`
}

type StatCard struct {
	Title        string `json:"title"`
	Value        int    `json:"value"`
	DisplayValue string `json:"display_value"`
}

type DailyStat struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Domain types

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	OrgName  string `json:"org_name"`
	Wards    []Ward `json:"wards"`
}

type Ward struct {
	ID   string `json:"ward_id"`
	Name string `json:"ward_name"`
}

type Session struct {
	Token    string    `json:"-"` // Never expose in JSON
	UserID   string    `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

type Property struct {
	ID           string `json:"id"`
	OrgName      string `json:"org_name"`
	ZoneID       string `json:"zone_id"`
	ZoneName     string `json:"zone_name"`
	WardID       string `json:"ward_id"`
	WardName     string `json:"ward_name"`
	AreaID       string `json:"area_id"`
	AreaName     string `json:"area_name"`
	LocID        string `json:"loc_id"`
	LocalityName string `json:"locality_name"`
	StreetID     string `json:"street_id"`
	StreetName   string `json:"street_name"`
	AssessmentNo string `json:"assessment_no"`
	DoorNo       string `json:"door_no"`
	OwnerName    string `json:"owner_name"`
	MobileNumber string `json:"mobile_number"`
	BuildArea    string `json:"build_area"`
	Usage        string `json:"usage"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
