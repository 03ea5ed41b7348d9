package climbs

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"climblog/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userA = "11111111-1111-4111-8111-111111111111"

func newServiceWithMock(t *testing.T) (*Service, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewService(&db.DB{DB: mockDB}), mock, mockDB
}

const insertEntryQuery = `(?s)^\s*INSERT\s+INTO\s+climbing_sessions\s*.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`

const listEntriesQuery = `(?s)^\s*SELECT\s+id,\s*session_date,\s*location,\s*route_grade,\s*duration_minutes,\s*notes\s+FROM\s+climbing_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+session_date\s+DESC,\s*created_at\s+DESC\s*$`

func TestCreate_Success(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(insertEntryQuery).
		WithArgs(userA, date, "Red River Gorge", "5.11a", 120,
			sql.NullString{String: "sent the project", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.Create(context.Background(), userA, CreateInput{
		SessionDate:     "2024-03-01",
		Location:        "Red River Gorge",
		RouteGrade:      "5.11a",
		DurationMinutes: 120,
		Notes:           "sent the project",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_EmptyNotesStoredAsNull(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(insertEntryQuery).
		WithArgs(userA, date, "Fontainebleau", "7a", 90, sql.NullString{}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.Create(context.Background(), userA, CreateInput{
		SessionDate:     "2024-03-01",
		Location:        "Fontainebleau",
		RouteGrade:      "7a",
		DurationMinutes: 90,
	})
	require.NoError(t, err)
}

func TestCreate_ValidationBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateInput
		wantErr error
	}{
		{"missing date", CreateInput{Location: "Siurana", RouteGrade: "6c", DurationMinutes: 60}, ErrMissingFields},
		{"missing location", CreateInput{SessionDate: "2024-01-01", RouteGrade: "6c", DurationMinutes: 60}, ErrMissingFields},
		{"missing grade", CreateInput{SessionDate: "2024-01-01", Location: "Siurana", DurationMinutes: 60}, ErrMissingFields},
		{"bad date", CreateInput{SessionDate: "yesterday", Location: "Siurana", RouteGrade: "6c", DurationMinutes: 60}, ErrInvalidDate},
		{"zero duration", CreateInput{SessionDate: "2024-01-01", Location: "Siurana", RouteGrade: "6c"}, ErrInvalidDuration},
		{"negative duration", CreateInput{SessionDate: "2024-01-01", Location: "Siurana", RouteGrade: "6c", DurationMinutes: -30}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock, mockDB := newServiceWithMock(t)
			defer mockDB.Close()

			err := svc.Create(context.Background(), userA, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			// no expectations were registered, so any query would fail the mock
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreate_DBError(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	mock.ExpectExec(insertEntryQuery).
		WillReturnError(errors.New("deadlock detected"))

	err := svc.Create(context.Background(), userA, CreateInput{
		SessionDate:     "2024-03-01",
		Location:        "Céüse",
		RouteGrade:      "8a",
		DurationMinutes: 45,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestList_OrderPreserved(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "session_date", "location", "route_grade", "duration_minutes", "notes"}).
		AddRow("e2", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Bishop", "V6", 180, sql.NullString{String: "highball day", Valid: true}).
		AddRow("e1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Hueco Tanks", "V4", 150, sql.NullString{})

	mock.ExpectQuery(listEntriesQuery).
		WithArgs(userA).
		WillReturnRows(rows)

	entries, err := svc.List(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2024-03-01", entries[0].SessionDate)
	assert.Equal(t, "2024-01-01", entries[1].SessionDate)
	assert.Equal(t, "Bishop", entries[0].Location)
	assert.Equal(t, "highball day", entries[0].Notes)
	assert.Equal(t, "", entries[1].Notes)
	assert.Equal(t, 180, entries[0].DurationMinutes)
}

func TestList_Empty(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	mock.ExpectQuery(listEntriesQuery).
		WithArgs(userA).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_date", "location", "route_grade", "duration_minutes", "notes"}))

	entries, err := svc.List(context.Background(), userA)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Len(t, entries, 0)
}

func TestList_DBError(t *testing.T) {
	svc, mock, mockDB := newServiceWithMock(t)
	defer mockDB.Close()

	mock.ExpectQuery(listEntriesQuery).
		WithArgs(userA).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.List(context.Background(), userA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}
