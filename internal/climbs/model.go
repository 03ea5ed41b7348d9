package climbs

import "time"

// Entry is one logged climbing session. SessionDate is kept as the
// calendar date string (YYYY-MM-DD); the store column is a date, not a
// timestamp. UserID never leaves the server in list payloads.
type Entry struct {
	ID              string `json:"id"`
	UserID          string `json:"-"`
	SessionDate     string `json:"session_date"`
	Location        string `json:"location"`
	RouteGrade      string `json:"route_grade"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"-"`
}

// DateLayout is the wire format for session_date.
const DateLayout = "2006-01-02"
