package models

// OTPRequest asks for a passcode to be issued to an email or phone number
type OTPRequest struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// OTPVerifyRequest carries a passcode for verification
type OTPVerifyRequest struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	OTP         string `json:"otp"`
}

// Delivery statuses reported after an OTP was issued
const (
	DeliverySent             = "sent"
	DeliveryStoredForTesting = "stored_for_testing"
	DeliveryFailed           = "delivery_failed"
)

// OTPIssueResult describes what happened to an issued passcode.
// The code itself is never part of the result.
type OTPIssueResult struct {
	Destination   string `json:"destination"`
	ExpiryMinutes int    `json:"expiry_minutes"`
	Status        string `json:"status"`
}

// EmailOTPMessage asks the notification service to email a passcode
type EmailOTPMessage struct {
	To            string `json:"to"`
	Code          string `json:"code"`
	ExpiryMinutes int    `json:"expiry_minutes"`
	Purpose       string `json:"purpose"`
}

// OTP purposes carried on EmailOTPMessage
const (
	PurposePasswordReset = "password_reset"
	PurposeStudentSignup = "student_signup"
)
