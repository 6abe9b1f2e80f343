package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

// AuthRepo implements auth.AuthRepo on PostgreSQL
type AuthRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		db:  db,
		cfg: cfg,
	}
}
