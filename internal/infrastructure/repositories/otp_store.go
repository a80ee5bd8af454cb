package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// consumeScript atomically compares the submitted code against the stored
// record and deletes it only on a match. Two racing verifies against the
// same record therefore cannot both succeed: the second one sees no record.
var consumeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
  return ''
end
local rec = cjson.decode(raw)
if rec['code'] ~= ARGV[1] then
  return '*'
end
redis.call('DEL', KEYS[1], KEYS[2])
return raw
`)

// OTPStoreImpl implements domain.OTPStore using Redis. One record lives per
// (resourceType, resourceID) pair; SET on issuance supersedes any prior
// record for the pair.
type OTPStoreImpl struct {
	client *redis.Client
}

// NewOTPStore creates a new Redis-backed OTP store
func NewOTPStore(client *redis.Client) domain.OTPStore {
	return &OTPStoreImpl{client: client}
}

func otpKey(resourceType, resourceID string) string {
	return fmt.Sprintf("otp:%s:%s", resourceType, resourceID)
}

func attemptsKey(resourceType, resourceID string) string {
	return fmt.Sprintf("otp:att:%s:%s", resourceType, resourceID)
}

func resendKey(resourceType, resourceID string) string {
	return fmt.Sprintf("otp:res:%s:%s", resourceType, resourceID)
}

// Put implements domain.OTPStore
func (s *OTPStoreImpl) Put(ctx context.Context, rec *domain.OTPRecord, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}

	key := otpKey(rec.ResourceType, rec.ResourceID)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP record: %w", err)
	}

	// A superseded record's attempt counter must not carry over.
	if err := s.client.Set(ctx, attemptsKey(rec.ResourceType, rec.ResourceID), 0, ttl).Err(); err != nil {
		return fmt.Errorf("failed to reset attempts counter: %w", err)
	}

	return nil
}

// Get implements domain.OTPStore
func (s *OTPStoreImpl) Get(ctx context.Context, resourceType, resourceID string) (*domain.OTPRecord, error) {
	data, err := s.client.Get(ctx, otpKey(resourceType, resourceID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrOTPNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP record: %w", err)
	}

	var rec domain.OTPRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}
	return &rec, nil
}

// Consume implements domain.OTPStore with an atomic compare-and-delete
func (s *OTPStoreImpl) Consume(ctx context.Context, resourceType, resourceID, code string) (*domain.OTPRecord, error) {
	keys := []string{otpKey(resourceType, resourceID), attemptsKey(resourceType, resourceID)}
	raw, err := consumeScript.Run(ctx, s.client, keys, code).Text()
	if err != nil {
		return nil, fmt.Errorf("failed to consume OTP record: %w", err)
	}

	switch raw {
	case "":
		return nil, domain.ErrOTPNotFound
	case "*":
		return nil, domain.ErrOTPInvalid
	}

	var rec domain.OTPRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}
	return &rec, nil
}

// Drop implements domain.OTPStore
func (s *OTPStoreImpl) Drop(ctx context.Context, resourceType, resourceID string) error {
	return s.client.Del(ctx,
		otpKey(resourceType, resourceID),
		attemptsKey(resourceType, resourceID),
		resendKey(resourceType, resourceID),
	).Err()
}

// IncrAttempts implements domain.OTPStore
func (s *OTPStoreImpl) IncrAttempts(ctx context.Context, resourceType, resourceID string, ttl time.Duration) (int64, error) {
	key := attemptsKey(resourceType, resourceID)
	attempts, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempts: %w", err)
	}
	// First increment on a counter Redis created implicitly needs a TTL so
	// the key cannot outlive the verification window.
	if attempts == 1 {
		s.client.Expire(ctx, key, ttl)
	}
	return attempts, nil
}

// ResendWait implements domain.OTPStore. Zero means a new code may be sent.
func (s *OTPStoreImpl) ResendWait(ctx context.Context, resourceType, resourceID string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, resendKey(resourceType, resourceID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ttl, nil
}

// SetResendThrottle implements domain.OTPStore
func (s *OTPStoreImpl) SetResendThrottle(ctx context.Context, resourceType, resourceID string, window time.Duration) error {
	if window <= 0 {
		return nil
	}
	return s.client.Set(ctx, resendKey(resourceType, resourceID), 1, window).Err()
}
