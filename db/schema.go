package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opencivic/ward-survey/auth"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the subset understood by both lib/pq and
// modernc sqlite: TEXT keys, explicit timestamps, no serial columns.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// EnsureUser creates an operator account if the username is not taken.
// Used for the startup bootstrap account; existing accounts are left alone.
func EnsureUser(db *sql.DB, username, password, orgName string) error {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM app_user WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO app_user (id, username, password_hash, full_name, org_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.NewString(), username, hash, username, orgName, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

const schema = `
-- Operator accounts
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    org_name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Wards assigned to an operator
CREATE TABLE IF NOT EXISTS user_ward (
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    ward_id TEXT NOT NULL,
    ward_name TEXT NOT NULL,
    PRIMARY KEY (user_id, ward_id)
);

-- Login sessions; validity is issued_at + 7 days
CREATE TABLE IF NOT EXISTS session (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    issued_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_user_id ON session(user_id);

-- Flat location-hierarchy property records (master data)
CREATE TABLE IF NOT EXISTS property (
    id TEXT PRIMARY KEY,
    org_name TEXT NOT NULL,
    zone_id TEXT NOT NULL,
    zone_name TEXT NOT NULL,
    ward_id TEXT NOT NULL,
    ward_name TEXT NOT NULL,
    area_id TEXT NOT NULL,
    area_name TEXT NOT NULL,
    loc_id TEXT NOT NULL,
    locality_name TEXT NOT NULL,
    street_id TEXT NOT NULL,
    street_name TEXT NOT NULL,
    assessment_no TEXT NOT NULL,
    door_no TEXT NOT NULL,
    owner_name TEXT NOT NULL,
    mobile_number TEXT,
    build_area TEXT,
    usage TEXT
);

CREATE INDEX IF NOT EXISTS idx_property_org ON property(org_name);
CREATE INDEX IF NOT EXISTS idx_property_ward ON property(org_name, ward_id);

-- Verification submissions against a property
CREATE TABLE IF NOT EXISTS verification (
    id TEXT PRIMARY KEY,
    property_id TEXT NOT NULL REFERENCES property(id) ON DELETE CASCADE,
    owner_name TEXT NOT NULL,
    owner_verified INTEGER NOT NULL,
    mobile TEXT NOT NULL,
    is_building INTEGER NOT NULL,
    building_type TEXT,
    total_floors TEXT,
    prop_floor TEXT,
    roof_structure TEXT,
    floor_area TEXT,
    usage TEXT,
    current_usage TEXT,
    eb_number TEXT,
    has_prof_tax INTEGER,
    prof_tax_id TEXT,
    submitted_by TEXT NOT NULL REFERENCES app_user(id),
    submitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_verification_property ON verification(property_id);
CREATE INDEX IF NOT EXISTS idx_verification_submitted_at ON verification(submitted_at);

-- Geotagged photos attached to a verification (at most 3)
CREATE TABLE IF NOT EXISTS verification_photo (
    id TEXT PRIMARY KEY,
    verification_id TEXT NOT NULL REFERENCES verification(id) ON DELETE CASCADE,
    image_data TEXT NOT NULL,
    latitude TEXT NOT NULL,
    longitude TEXT NOT NULL,
    captured_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_verification_photo_verification ON verification_photo(verification_id);

-- Completed multi-step field surveys
CREATE TABLE IF NOT EXISTS field_survey (
    id TEXT PRIMARY KEY,
    ward_name TEXT NOT NULL,
    street_name TEXT NOT NULL,
    locality_name TEXT NOT NULL,
    owner_name TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    total_floors TEXT NOT NULL,
    latitude TEXT NOT NULL,
    longitude TEXT NOT NULL,
    building_usage TEXT NOT NULL,
    building_structure TEXT NOT NULL,
    submitted_by TEXT NOT NULL REFERENCES app_user(id),
    submitted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_field_survey_submitted_at ON field_survey(submitted_at);
`
