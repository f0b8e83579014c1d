package auth

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencivic/ward-survey/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionTTL is the fixed validity window of a login session.
const SessionTTL = 7 * 24 * time.Hour

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateSessionToken creates a random secure token for a login session
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashPassword hashes an operator password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SessionValid is the session expiry rule: valid iff the elapsed time since
// issuance is still inside the 7-day window.
func SessionValid(issuedAt, now time.Time) bool {
	return now.Sub(issuedAt) < SessionTTL
}

// ParseAuthorization extracts the session token from an Authorization header
// value. The portal's HTTP client sends the bare token; "Bearer <token>" is
// accepted too.
func ParseAuthorization(header string) string {
	header = strings.TrimSpace(header)
	if rest, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return header
}

// CreateSession issues a new session token for a user
func CreateSession(db *sql.DB, userID string) (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}

	_, err = db.Exec(`
		INSERT INTO session (token, user_id, issued_at)
		VALUES ($1, $2, $3)
	`, token, userID, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// ValidateSession resolves a token to its operator, enforcing expiry.
// Expired sessions are deleted on sight and reported as ErrSessionExpired.
func ValidateSession(db *sql.DB, token string, now time.Time) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var userID string
	var issuedAt time.Time
	err := db.QueryRow(`
		SELECT user_id, issued_at FROM session WHERE token = $1
	`, token).Scan(&userID, &issuedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if !SessionValid(issuedAt, now) {
		_, _ = db.Exec(`DELETE FROM session WHERE token = $1`, token)
		return nil, ErrSessionExpired
	}

	var user models.User
	err = db.QueryRow(`
		SELECT id, username, full_name, org_name FROM app_user WHERE id = $1
	`, userID).Scan(&user.ID, &user.Username, &user.Name, &user.OrgName)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	rows, err := db.Query(`
		SELECT ward_id, ward_name FROM user_ward WHERE user_id = $1 ORDER BY ward_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wards: %w", err)
	}
	defer rows.Close()

	user.Wards = []models.Ward{}
	for rows.Next() {
		var w models.Ward
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, fmt.Errorf("failed to scan ward: %w", err)
		}
		user.Wards = append(user.Wards, w)
	}

	return &user, nil
}

// DeleteSession removes a session (logout)
func DeleteSession(db *sql.DB, token string) error {
	_, err := db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes sessions past the validity window.
// Called by the hourly sweeper in main.
func DeleteExpiredSessions(db *sql.DB, now time.Time) (int64, error) {
	res, err := db.Exec(`DELETE FROM session WHERE issued_at < $1`, now.Add(-SessionTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted sessions: %w", err)
	}
	return n, nil
}
