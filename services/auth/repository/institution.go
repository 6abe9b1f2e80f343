package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/studentdeals/internal/pkg/models"
)

// GetInstitutionByID retrieves an institution
func (r *AuthRepo) GetInstitutionByID(ctx context.Context, id string) (*models.Institution, error) {
	query := `SELECT id, name, domain, lookup_url, api_key FROM institutions WHERE id = $1`

	var inst models.Institution
	if err := r.db.GetContext(ctx, &inst, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("failed to get institution: %w", err)
	}

	return &inst, nil
}

// KnownStudentExists checks the demo student list of an institution
func (r *AuthRepo) KnownStudentExists(ctx context.Context, institutionID, studentID, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM known_students
			WHERE institution_id = $1 AND student_id = $2 AND LOWER(email) = $3
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, institutionID, studentID, email); err != nil {
		return false, fmt.Errorf("failed to check known students: %w", err)
	}
	return exists, nil
}
