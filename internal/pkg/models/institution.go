package models

// Institution is a school whose students may claim discounts
type Institution struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Domain    string  `json:"domain" db:"domain"`
	LookupURL *string `json:"-" db:"lookup_url"`
	APIKey    *string `json:"-" db:"api_key"`
}

// StudentVerificationRequest asks to verify a student identity against an institution
type StudentVerificationRequest struct {
	Email         string `json:"email"`
	InstitutionID string `json:"institution_id"`
	StudentID     string `json:"student_id"`
}

// StudentVerificationResult is returned when a student identity was confirmed
type StudentVerificationResult struct {
	Verified      bool   `json:"verified"`
	InstitutionID string `json:"institution_id"`
	Email         string `json:"email"`
}
