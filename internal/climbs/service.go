package climbs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"climblog/internal/db"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidDate     = errors.New("session_date must be a valid date (YYYY-MM-DD)")
	ErrInvalidDuration = errors.New("duration_minutes must be a positive integer")
)

// CreateInput carries the client-supplied fields for a new entry. The
// owning user id is never part of it; it comes from the caller's session.
type CreateInput struct {
	SessionDate     string
	Location        string
	RouteGrade      string
	DurationMinutes int
	Notes           string
}

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Create validates the input and inserts the entry for userID.
// Validation completes before any storage access.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) error {

	if in.SessionDate == "" || in.Location == "" || in.RouteGrade == "" {
		return ErrMissingFields
	}
	date, err := time.Parse(DateLayout, in.SessionDate)
	if err != nil {
		return ErrInvalidDate
	}
	if in.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}

	notes := sql.NullString{String: in.Notes, Valid: in.Notes != ""}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO climbing_sessions
			(user_id, session_date, location, route_grade, duration_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, date, in.Location, in.RouteGrade, in.DurationMinutes, notes)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// List returns userID's entries, most recent session first. Entries on the
// same date come back in reverse insertion order, which keeps ties stable.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_date, location, route_grade, duration_minutes, notes
		FROM climbing_sessions
		WHERE user_id = $1
		ORDER BY session_date DESC, created_at DESC
	`, userID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)

	for rows.Next() {
		var (
			e     Entry
			date  time.Time
			notes sql.NullString
		)
		if err := rows.Scan(&e.ID, &date, &e.Location, &e.RouteGrade, &e.DurationMinutes, &notes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		e.UserID = userID
		e.SessionDate = date.Format(DateLayout)
		e.Notes = notes.String
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entries, nil
}
