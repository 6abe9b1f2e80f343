package usecase

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/piresc/studentdeals/internal/pkg/constants"
	"github.com/piresc/studentdeals/internal/pkg/database"
	"github.com/piresc/studentdeals/internal/pkg/jwt"
	"github.com/piresc/studentdeals/internal/pkg/models"
	"github.com/piresc/studentdeals/internal/pkg/otp"
	"github.com/piresc/studentdeals/internal/pkg/password"
	"github.com/piresc/studentdeals/services/auth/mocks"
)

const (
	testAccessSecret  = "access-secret-access-secret-0123456789"
	testRefreshSecret = "refresh-secret-refresh-secret-0123456789"
	strongPassword    = "Passw0rd!"
)

type fixture struct {
	uc           *AuthUC
	cfg          *models.Config
	repo         *mocks.MockAuthRepo
	email        *mocks.MockEmailSender
	whatsapp     *mocks.MockWhatsAppSender
	institutions *mocks.MockInstitutionLookup
	events       *mocks.MockEventPublisher
	mr           *miniredis.Miniredis
	tokens       *jwt.Manager
	passwords    *password.Service
}

func newFixture(t *testing.T, opts ...otp.Option) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:  testAccessSecret,
			RefreshSecret: testRefreshSecret,
			Issuer:        "studentdeals",
		},
		OTP: models.OTPConfig{
			DefaultTTL: 10 * time.Minute,
			PhoneTTL:   5 * time.Minute,
		},
		Institution: models.InstitutionConfig{Mode: models.InstitutionModeDemo},
	}

	tokens, err := jwt.NewManager(cfg.JWT)
	require.NoError(t, err)

	f := &fixture{
		cfg:          cfg,
		repo:         mocks.NewMockAuthRepo(ctrl),
		email:        mocks.NewMockEmailSender(ctrl),
		whatsapp:     mocks.NewMockWhatsAppSender(ctrl),
		institutions: mocks.NewMockInstitutionLookup(ctrl),
		events:       mocks.NewMockEventPublisher(ctrl),
		mr:           mr,
		tokens:       tokens,
		passwords:    password.NewService(bcrypt.MinCost),
	}
	f.uc = NewAuthUC(cfg, f.repo, f.email, f.whatsapp, f.institutions, f.events,
		otp.NewStore(&database.RedisClient{Client: client}, opts...), tokens, f.passwords)
	return f
}

// fixedCode makes the OTP store hand out a known code
func fixedCode(code string) otp.Option {
	return otp.WithGenerator(func() (string, error) { return code, nil })
}

func (f *fixture) user(t *testing.T, email, plaintext string, role models.Role) *models.User {
	t.Helper()
	hash, err := f.passwords.Hash(plaintext)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     "Jane Doe",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}

// proveEmail stores the marker left by a verified student signup code
func (f *fixture) proveEmail(email string) {
	f.mr.Set(constants.NamespaceStudentEmailVerified+email, "1")
}

func (f *fixture) allowEvents() {
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// fixedCodes hands out codes in order
func fixedCodes(codes ...string) otp.Option {
	i := 0
	return otp.WithGenerator(func() (string, error) {
		code := codes[i%len(codes)]
		i++
		return code, nil
	})
}
