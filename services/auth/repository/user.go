package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

const uniqueViolation = "23505"

const userColumns = `id, email, full_name, password_hash, role, phone_number,
	phone_verified, student_verified, institution_id, is_active, created_at, updated_at`

// CreateUser inserts a new user. A duplicate email yields models.ErrEmailTaken.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, full_name, password_hash, role,
			phone_verified, student_verified, is_active, created_at, updated_at
		) VALUES (:id, :email, :full_name, :password_hash, :role,
			:phone_verified, :student_verified, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by lowercased email
func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// GetUserByID retrieves a user by ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrUserNotFound
	}
	return r.getUserByField(ctx, "id", id)
}

// field is never user input
func (r *AuthRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdatePasswordHash replaces the stored password hash
func (r *AuthRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`
	return r.updateOne(ctx, query, hash, time.Now(), userID)
}

// MarkPhoneVerified stores the phone number and flags it verified
func (r *AuthRepo) MarkPhoneVerified(ctx context.Context, userID, phone string) error {
	query := `UPDATE users SET phone_number = $1, phone_verified = TRUE, updated_at = $2 WHERE id = $3`
	return r.updateOne(ctx, query, phone, time.Now(), userID)
}

// MarkStudentVerified flags the account with email as a verified student.
// Students may verify before registering, so a missing account is not an error.
func (r *AuthRepo) MarkStudentVerified(ctx context.Context, email, institutionID string) error {
	query := `
		UPDATE users SET student_verified = TRUE, institution_id = $1, updated_at = $2
		WHERE email = $3 AND role = 'student'
	`
	if _, err := r.db.ExecContext(ctx, query, institutionID, time.Now(), email); err != nil {
		return fmt.Errorf("failed to mark student verified: %w", err)
	}
	return nil
}

func (r *AuthRepo) updateOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
