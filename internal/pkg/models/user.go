package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the capability class of an account
type Role string

const (
	RoleStudent Role = "student"
	RoleVendor  Role = "vendor"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// User represents an account of the marketplace
type User struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	FullName        string    `json:"full_name" db:"full_name"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	Role            Role      `json:"role" db:"role"`
	PhoneNumber     *string   `json:"phone_number,omitempty" db:"phone_number"`
	PhoneVerified   bool      `json:"phone_verified" db:"phone_verified"`
	StudentVerified bool      `json:"student_verified" db:"student_verified"`
	InstitutionID   *string   `json:"institution_id,omitempty" db:"institution_id"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
