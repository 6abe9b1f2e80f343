package auth

import (
	"context"

	"github.com/piresc/studentdeals/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/studentdeals/services/auth AuthRepo

// AuthRepo defines the persistence the auth service needs
type AuthRepo interface {
	// users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID, hash string) error
	MarkPhoneVerified(ctx context.Context, userID, phone string) error
	MarkStudentVerified(ctx context.Context, email, institutionID string) error

	// institutions
	GetInstitutionByID(ctx context.Context, id string) (*models.Institution, error)
	KnownStudentExists(ctx context.Context, institutionID, studentID, email string) (bool, error)
}
