package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"climblog/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("account already exists")

	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

// non-space local part, non-space domain with at least one dot
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// uniqueViolation is Postgres error code 23505.
const uniqueViolation = "23505"

type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Register validates the input, hashes the password and inserts the user.
// Validation happens before any storage access. Duplicate email/username is
// caught via the unique indexes, never an application-level pre-check.
func (s *Service) Register(
	ctx context.Context,
	username string,
	email string,
	password string,
) (string, error) {

	if username == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return "", ErrInvalidEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	var userID uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, email, hash).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return "", ErrAlreadyRegistered
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return userID.String(), nil
}

// Authenticate resolves email+password to the registered user. Both an
// unknown email and a wrong password collapse into ErrInvalidCredentials so
// the response cannot reveal which field was wrong.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*User, error) {

	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	var (
		userID       uuid.UUID
		username     string
		passwordHash string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&userID, &username, &passwordHash)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := VerifyPassword(passwordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &User{
		ID:       userID.String(),
		Username: username,
		Email:    email,
	}, nil
}
