package constants

// NATS subjects published by the auth service
const (
	SubjectPasswordChanged = "auth.password.changed"
	SubjectPhoneVerified   = "auth.phone.verified"
	SubjectStudentVerified = "auth.student.verified"
	SubjectUserRegistered  = "auth.user.registered"

	// Consumed by the notification service, which owns the email provider
	SubjectEmailOTP = "notification.email.otp"
)
