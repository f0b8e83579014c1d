package handlers

import (
	"database/sql"
	"testing"
	"time"

	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/opencivic/ward-survey/models"
	"github.com/opencivic/ward-survey/testutil"
)

func seedVerification(t *testing.T, db *sql.DB, propertyID, userID string, at time.Time) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO verification (
			id, property_id, owner_name, owner_verified, mobile, is_building,
			submitted_by, submitted_at
		) VALUES ($1, $2, 'Asha Kumar', 1, '9876543210', 1, $3, $4)
	`, uuid.NewString(), propertyID, userID, at)
	if err != nil {
		t.Fatalf("Failed to seed verification: %v", err)
	}
}

func seedFieldSurvey(t *testing.T, db *sql.DB, userID string, at time.Time) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO field_survey (
			id, ward_name, street_name, locality_name, owner_name, phone_number,
			total_floors, latitude, longitude, building_usage, building_structure,
			submitted_by, submitted_at
		) VALUES ($1, 'Ward 1', 'Main St', 'Central', 'Ravi Shankar', '9876543210',
			'2', '13.0827', '80.2707', 'residential', 'RCC', $2, $3)
	`, uuid.NewString(), userID, at)
	if err != nil {
		t.Fatalf("Failed to seed field survey: %v", err)
	}
}

func TestGetSummary_Counts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	userID := testutil.CreateTestUser(t, db, "surveyor", "secret123", "W1")

	verified := testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Main St", "Asha Kumar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 1", "Zone A", "Central", "Park Rd", "Ravi Shankar")
	testutil.SeedProperty(t, db, "Test Corporation", "Ward 2", "Zone B", "North", "Hill Rd", "Meena Iyer")

	now := time.Now()
	seedVerification(t, db, verified, userID, now)
	seedFieldSurvey(t, db, userID, now.AddDate(0, 0, -2))
	// Outside the trailing week and the current month
	seedFieldSurvey(t, db, userID, now.AddDate(0, -2, 0))

	handler := NewDashboardHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/dashboard/summary", nil, nil)
	w := httptest.NewRecorder()
	handler.GetSummary(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.DashboardSummary
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalCompleted != 3 {
		t.Errorf("Expected 3 completed, got %d", resp.TotalCompleted)
	}
	if resp.TotalPending != 2 {
		t.Errorf("Expected 2 pending, got %d", resp.TotalPending)
	}
	if resp.Last7DaysCount != 2 {
		t.Errorf("Expected 2 in the last 7 days, got %d", resp.Last7DaysCount)
	}
	if resp.CompletionPct != "60.0" {
		t.Errorf("Expected completion 60.0, got %s", resp.CompletionPct)
	}
	if len(resp.Daily) != 7 {
		t.Errorf("Expected 7 daily buckets, got %d", len(resp.Daily))
	}
	if len(resp.Cards) != 4 {
		t.Fatalf("Expected 4 stat cards, got %d", len(resp.Cards))
	}
}

func TestGetSummary_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	handler := NewDashboardHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/dashboard/summary", nil, nil)
	w := httptest.NewRecorder()
	handler.GetSummary(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.DashboardSummary
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalCompleted != 0 || resp.TotalPending != 0 {
		t.Errorf("Expected zero counts, got %+v", resp)
	}
	if resp.CompletionPct != "0.0" {
		t.Errorf("Expected completion 0.0 with no data, got %s", resp.CompletionPct)
	}
	for _, d := range resp.Daily {
		if d.Count != 0 {
			t.Errorf("Expected zero-filled daily buckets, got %+v", resp.Daily)
		}
	}
}

func TestPercentComplete(t *testing.T) {
	testCases := []struct {
		name      string
		completed int
		total     int
		expected  string
	}{
		{"Zero", 0, 0, "0.0"},
		{"Half", 1, 2, "50.0"},
		{"Third", 1, 3, "33.3"},
		{"Full", 5, 5, "100.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := percentComplete(tc.completed, tc.total); got != tc.expected {
				t.Errorf("percentComplete(%d, %d) = %s, want %s", tc.completed, tc.total, got, tc.expected)
			}
		})
	}
}
