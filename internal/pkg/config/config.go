package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

// ErrMissingSecret is returned by Validate when a signing secret is not configured
var ErrMissingSecret = errors.New("jwt signing secret is not configured")

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "auth-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.TrustedProxies = GetEnvAsSlice("SERVER_TRUSTED_PROXIES")

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.AccessSecret = GetEnv("JWT_ACCESS_SECRET", "")
	configs.JWT.RefreshSecret = GetEnv("JWT_REFRESH_SECRET", "")
	configs.JWT.AccessTTL = GetEnvAsDuration("JWT_ACCESS_TTL", 15*time.Minute)
	configs.JWT.RefreshTTL = GetEnvAsDuration("JWT_REFRESH_TTL", 7*24*time.Hour)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "studentdeals")

	// OTP config
	configs.OTP.DefaultTTL = GetEnvAsDuration("OTP_TTL", 10*time.Minute)
	configs.OTP.PhoneTTL = GetEnvAsDuration("OTP_PHONE_TTL", 5*time.Minute)
	configs.OTP.ProofTTL = GetEnvAsDuration("OTP_PROOF_TTL", 30*time.Minute)

	// Password config
	configs.Password.Cost = GetEnvAsInt("PASSWORD_BCRYPT_COST", 12)

	// Twilio config
	configs.Twilio.AccountSID = GetEnv("TWILIO_ACCOUNT_SID", "")
	configs.Twilio.AuthToken = GetEnv("TWILIO_AUTH_TOKEN", "")
	configs.Twilio.WhatsAppFrom = GetEnv("TWILIO_WHATSAPP_FROM", "")

	// Institution config
	configs.Institution.Mode = models.InstitutionMode(GetEnv("INSTITUTION_VERIFICATION_MODE", string(models.InstitutionModeDemo)))
	configs.Institution.LookupTimeout = GetEnvAsDuration("INSTITUTION_LOOKUP_TIMEOUT", 5*time.Second)

	// Rate limit config
	configs.RateLimit.OTPLimit = GetEnvAsInt("RATE_LIMIT_OTP", 5)
	configs.RateLimit.OTPPeriod = GetEnvAsDuration("RATE_LIMIT_OTP_PERIOD", 15*time.Minute)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate rejects configurations the service must not start with.
// Secret strength is checked by jwt.NewManager.
func Validate(configs *models.Config) error {
	if configs.JWT.AccessSecret == "" || configs.JWT.RefreshSecret == "" {
		return ErrMissingSecret
	}
	if configs.JWT.AccessTTL <= 0 || configs.JWT.RefreshTTL <= 0 {
		return errors.New("jwt token lifetimes must be positive")
	}
	if configs.OTP.DefaultTTL <= 0 || configs.OTP.PhoneTTL <= 0 || configs.OTP.ProofTTL <= 0 {
		return errors.New("otp expiry windows must be positive")
	}
	switch configs.Institution.Mode {
	case models.InstitutionModeDemo, models.InstitutionModeAPI:
	default:
		return errors.New("unknown institution verification mode: " + string(configs.Institution.Mode))
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("15m", "168h")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice splits a comma-separated value, dropping empty entries
func GetEnvAsSlice(key string) []string {
	var values []string
	for _, v := range strings.Split(GetEnv(key, ""), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
