package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/opencivic/ward-survey/cliparse"
	"github.com/opencivic/ward-survey/middleware"
	"github.com/opencivic/ward-survey/models"
)

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// submissionTimes returns every submitted_at across verifications and field
// surveys. Date bucketing happens in Go so both database drivers behave
// identically.
func (h *DashboardHandler) submissionTimes() ([]time.Time, error) {
	times := []time.Time{}
	for _, query := range []string{
		`SELECT submitted_at FROM verification`,
		`SELECT submitted_at FROM field_survey`,
	} {
		rows, err := h.db.Query(query)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var t time.Time
			if err := rows.Scan(&t); err != nil {
				rows.Close()
				return nil, err
			}
			times = append(times, t)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return times, nil
}

func percentComplete(completed, total int) string {
	if total == 0 {
		return "0.0"
	}
	pct := float64(completed) / float64(total) * 100
	return strconv.FormatFloat(pct, 'f', 1, 64)
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var pending int
	err := h.db.QueryRow(`
		SELECT COUNT(*) FROM property p
		WHERE NOT EXISTS (SELECT 1 FROM verification v WHERE v.property_id = p.id)
	`).Scan(&pending)
	if err != nil {
		slog.Error("failed to count pending properties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	times, err := h.submissionTimes()
	if err != nil {
		slog.Error("failed to load submission times", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -6)
	weekStartDay := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, now.Location())

	completed := len(times)
	monthly := 0
	last7 := 0
	perDay := make(map[string]int)
	for _, t := range times {
		t = t.In(now.Location())
		if !t.Before(monthStart) {
			monthly++
		}
		if !t.Before(weekStartDay) {
			last7++
			perDay[t.Format("2006-01-02")]++
		}
	}

	// Trailing seven days, oldest first, zero-filled
	daily := make([]models.DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		daily = append(daily, models.DailyStat{
			Day:   day.Format("Mon"),
			Count: perDay[day.Format("2006-01-02")],
		})
	}

	summary := models.DashboardSummary{
		TotalCompleted: completed,
		TotalPending:   pending,
		MonthlyCount:   monthly,
		Last7DaysCount: last7,
		CompletionPct:  percentComplete(completed, completed+pending),
		Daily:          daily,
	}
	for _, card := range []struct {
		title string
		value int
	}{
		{"Total Completed", completed},
		{"Total Pending", pending},
		{"This Month", monthly},
		{"Last 7 Days", last7},
	} {
		summary.Cards = append(summary.Cards, models.StatCard{
			Title:        card.title,
			Value:        card.value,
			DisplayValue: humanize.Comma(int64(card.value)),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
