// Package testutil provides shared helpers for handler and router tests.
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opencivic/ward-survey/auth"
	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/db"
	_ "modernc.org/sqlite"
)

// SetupTestDB opens an in-memory database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4180,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		OrgName:      "Test Corporation",
	}
}

// CreateTestUser inserts a user with the given wards and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string, wards ...string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	userID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO app_user (id, username, password_hash, full_name, org_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, username, hash, "Test Surveyor", "Test Corporation", time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	for i, ward := range wards {
		_, err = conn.Exec(`
			INSERT INTO user_ward (user_id, ward_id, ward_name)
			VALUES ($1, $2, $3)
		`, userID, ward, "Ward "+string(rune('A'+i)))
		if err != nil {
			t.Fatalf("Failed to assign test ward: %v", err)
		}
	}

	return userID
}

// CreateTestSession issues a session for the user and returns its token
func CreateTestSession(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.CreateSession(conn, userID)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return token
}

// SeedProperty inserts a property row for cascade and search tests.
// Hierarchy ids are derived from the names so callers only pass names.
func SeedProperty(t *testing.T, conn *sql.DB, org, ward, area, locality, street, owner string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO property (
			id, org_name, zone_id, zone_name, ward_id, ward_name,
			area_id, area_name, loc_id, locality_name, street_id, street_name,
			assessment_no, door_no, owner_name, mobile_number, build_area, usage
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, id, org, "Z-1", "Zone 1", "id-"+ward, ward,
		"id-"+area, area, "id-"+locality, locality, "id-"+street, street,
		"ASMT-"+id[:8], "12", owner, "9876543210", "1200", "residential")
	if err != nil {
		t.Fatalf("Failed to seed property: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
