package constants

// OTP namespaces. The key is appended to the namespace: {namespace}{key}
const (
	NamespaceWhatsAppOTP      = "whatsapp_otp:"       // whatsapp_otp:{e164 phone}
	NamespaceStudentSignupOTP = "student_signup_otp:" // student_signup_otp:{lowercased email}
	NamespacePasswordResetOTP = "password_reset_otp:" // password_reset_otp:{lowercased email}
)

// Proof markers written once a code is consumed
const (
	NamespaceStudentEmailVerified = "student_email_verified:" // student_email_verified:{lowercased email}
)

// Rate Limiting
const (
	KeyRateLimit = "rate:limit:%s:%s:%s" // Format: rate:limit:{resource}:{route}:{identifier}
)
