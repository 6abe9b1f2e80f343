package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/studentdeals/internal/pkg/database"
	"github.com/piresc/studentdeals/internal/pkg/logger"
)

const (
	// CodeLength is the number of digits in a code
	CodeLength = 6

	minCode = 100000
	maxCode = 999999
)

// ErrCacheUnavailable is returned by Issue when the code could not be stored.
// The code is still returned so non-critical flows can continue.
var ErrCacheUnavailable = errors.New("otp cache unavailable")

// consumeLua deletes the key only when it holds the candidate code.
// Returns 1 when the code matched and was consumed, 0 otherwise.
var consumeLua = redis.NewScript(`
local stored = redis.call('GET', KEYS[1])
if not stored then
  return 0
end
if stored ~= ARGV[1] then
  return 0
end
redis.call('DEL', KEYS[1])
return 1
`)

// Generator produces a new code
type Generator func() (string, error)

// Store issues and consumes one-time codes kept in Redis under a namespace prefix
type Store struct {
	redis    *database.RedisClient
	generate Generator
}

// Option configures a Store
type Option func(*Store)

// WithGenerator overrides the code generator
func WithGenerator(g Generator) Option {
	return func(s *Store) {
		s.generate = g
	}
}

// NewStore creates a new OTP store
func NewStore(redisClient *database.RedisClient, opts ...Option) *Store {
	s := &Store{
		redis:    redisClient,
		generate: GenerateCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateCode returns a uniformly random code in [100000, 999999]
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+minCode), nil
}

// Issue generates a code and stores it under namespace+key for ttl,
// replacing any live code for the same key
func (s *Store) Issue(ctx context.Context, namespace, key string, ttl time.Duration) (string, error) {
	code, err := s.generate()
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, namespace+key, code, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to store OTP, continuing without cache",
			logger.String("namespace", namespace),
			logger.String("key", key),
			logger.String("otp", code),
			logger.Err(err))
		return code, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}

	return code, nil
}

// Verify consumes the code stored under namespace+key if it equals candidate.
// A mismatch leaves the stored code in place. Cache errors fail closed.
func (s *Store) Verify(ctx context.Context, namespace, key, candidate string) bool {
	if candidate == "" {
		return false
	}

	res, err := consumeLua.Run(ctx, s.redis.GetClient(), []string{namespace + key}, candidate).Int()
	if err != nil {
		logger.WarnCtx(ctx, "OTP verification failed closed",
			logger.String("namespace", namespace),
			logger.String("key", key),
			logger.Err(err))
		return false
	}

	return res == 1
}

// MarkVerified records for ttl that key proved control of its address
func (s *Store) MarkVerified(ctx context.Context, namespace, key string, ttl time.Duration) error {
	if err := s.redis.Set(ctx, namespace+key, "1", ttl); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// IsVerified reports whether a MarkVerified record is still live.
// Cache errors are returned as ErrCacheUnavailable so callers can fail closed.
func (s *Store) IsVerified(ctx context.Context, namespace, key string) (bool, error) {
	ok, err := s.redis.Exists(ctx, namespace+key)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheUnavailable, err)
	}
	return ok, nil
}

// ClearVerified removes a MarkVerified record
func (s *Store) ClearVerified(ctx context.Context, namespace, key string) error {
	return s.redis.Delete(ctx, namespace+key)
}

// TTL returns how long the code under namespace+key stays valid.
// A missing key yields a non-positive duration.
func (s *Store) TTL(ctx context.Context, namespace, key string) (time.Duration, error) {
	return s.redis.TTL(ctx, namespace+key)
}

// NormalizeEmail trims and lowercases an email so it can be used as a key
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
