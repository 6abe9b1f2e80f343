package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	OTP         OTPConfig
	Password    PasswordConfig
	Twilio      TwilioConfig
	Institution InstitutionConfig
	RateLimit   RateLimitConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	TrustedProxies  []string // CIDRs allowed to set X-Forwarded-For
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains token signing configuration.
// Access and refresh tokens are signed with different secrets.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// OTPConfig contains one-time passcode expiry windows
type OTPConfig struct {
	DefaultTTL time.Duration
	PhoneTTL   time.Duration
	ProofTTL   time.Duration // how long a verified student email stays usable
}

// PasswordConfig contains the bcrypt work factor
type PasswordConfig struct {
	Cost int
}

// TwilioConfig contains WhatsApp delivery credentials. Empty means not configured.
type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
}

// InstitutionMode selects how student identities are checked
type InstitutionMode string

const (
	// InstitutionModeDemo checks the known_students table
	InstitutionModeDemo InstitutionMode = "demo"
	// InstitutionModeAPI delegates to the institution lookup API
	InstitutionModeAPI InstitutionMode = "api"
)

// InstitutionConfig contains student verification configuration
type InstitutionConfig struct {
	Mode          InstitutionMode
	LookupTimeout time.Duration
}

// RateLimitConfig contains limits for OTP issuing endpoints
type RateLimitConfig struct {
	OTPLimit  int
	OTPPeriod time.Duration
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
