// Package mocks provides hand-rolled test doubles for the domain
// interfaces. Each mock exposes func fields so tests can script behavior
// per case without a mocking framework.
package mocks

import (
	"context"
	"time"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// MockUserRepository implements domain.UserRepository
type MockUserRepository struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	FindByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFn      func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	ApplyKYCFn      func(ctx context.Context, userID uint, status domain.KYCStatus) error
	ListProvidersFn func(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error)
}

var _ domain.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFn(ctx, user)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.UpdateFn(ctx, user)
}

func (m *MockUserRepository) ApplyKYC(ctx context.Context, userID uint, status domain.KYCStatus) error {
	return m.ApplyKYCFn(ctx, userID, status)
}

func (m *MockUserRepository) ListProviders(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error) {
	return m.ListProvidersFn(ctx, bucket)
}

// MockSessionRepository implements domain.SessionRepository
type MockSessionRepository struct {
	CreateFn   func(ctx context.Context, session *domain.Session) error
	FindByIDFn func(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteFn   func(ctx context.Context, sessionID string) error
}

var _ domain.SessionRepository = (*MockSessionRepository)(nil)

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return m.CreateFn(ctx, session)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.FindByIDFn(ctx, sessionID)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return m.DeleteFn(ctx, sessionID)
}

// MockOTPStore implements domain.OTPStore
type MockOTPStore struct {
	PutFn               func(ctx context.Context, rec *domain.OTPRecord, ttl time.Duration) error
	GetFn               func(ctx context.Context, resourceType, resourceID string) (*domain.OTPRecord, error)
	ConsumeFn           func(ctx context.Context, resourceType, resourceID, code string) (*domain.OTPRecord, error)
	DropFn              func(ctx context.Context, resourceType, resourceID string) error
	IncrAttemptsFn      func(ctx context.Context, resourceType, resourceID string, ttl time.Duration) (int64, error)
	ResendWaitFn        func(ctx context.Context, resourceType, resourceID string) (time.Duration, error)
	SetResendThrottleFn func(ctx context.Context, resourceType, resourceID string, window time.Duration) error
}

var _ domain.OTPStore = (*MockOTPStore)(nil)

func (m *MockOTPStore) Put(ctx context.Context, rec *domain.OTPRecord, ttl time.Duration) error {
	return m.PutFn(ctx, rec, ttl)
}

func (m *MockOTPStore) Get(ctx context.Context, resourceType, resourceID string) (*domain.OTPRecord, error) {
	return m.GetFn(ctx, resourceType, resourceID)
}

func (m *MockOTPStore) Consume(ctx context.Context, resourceType, resourceID, code string) (*domain.OTPRecord, error) {
	return m.ConsumeFn(ctx, resourceType, resourceID, code)
}

func (m *MockOTPStore) Drop(ctx context.Context, resourceType, resourceID string) error {
	return m.DropFn(ctx, resourceType, resourceID)
}

func (m *MockOTPStore) IncrAttempts(ctx context.Context, resourceType, resourceID string, ttl time.Duration) (int64, error) {
	return m.IncrAttemptsFn(ctx, resourceType, resourceID, ttl)
}

func (m *MockOTPStore) ResendWait(ctx context.Context, resourceType, resourceID string) (time.Duration, error) {
	return m.ResendWaitFn(ctx, resourceType, resourceID)
}

func (m *MockOTPStore) SetResendThrottle(ctx context.Context, resourceType, resourceID string, window time.Duration) error {
	return m.SetResendThrottleFn(ctx, resourceType, resourceID, window)
}

// MockVerificationRepository implements domain.VerificationRepository
type MockVerificationRepository struct {
	CreateFn         func(ctx context.Context, v *domain.Verification) error
	FindByResourceFn func(ctx context.Context, resourceType, resourceID string) (*domain.Verification, error)
}

var _ domain.VerificationRepository = (*MockVerificationRepository)(nil)

func (m *MockVerificationRepository) Create(ctx context.Context, v *domain.Verification) error {
	return m.CreateFn(ctx, v)
}

func (m *MockVerificationRepository) FindByResource(ctx context.Context, resourceType, resourceID string) (*domain.Verification, error) {
	return m.FindByResourceFn(ctx, resourceType, resourceID)
}

// MockAnnouncementRepository implements domain.AnnouncementRepository
type MockAnnouncementRepository struct {
	CreateFn func(ctx context.Context, a *domain.Announcement) error
	ListFn   func(ctx context.Context) ([]*domain.Announcement, error)
	DeleteFn func(ctx context.Context, id uint) error
}

var _ domain.AnnouncementRepository = (*MockAnnouncementRepository)(nil)

func (m *MockAnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	return m.CreateFn(ctx, a)
}

func (m *MockAnnouncementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	return m.ListFn(ctx)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFn(ctx, id)
}

// MockPasswordService implements domain.PasswordService
type MockPasswordService struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(hashedPassword, password string) bool
}

var _ domain.PasswordService = (*MockPasswordService)(nil)

func (m *MockPasswordService) Hash(password string) (string, error) { return m.HashFn(password) }

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	return m.VerifyFn(hashedPassword, password)
}

// MockTokenService implements domain.TokenService
type MockTokenService struct {
	GenerateAccessTokenFn  func(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshTokenFn func(userID uint, role string, sessionID string) (string, error)
	ValidateAccessTokenFn  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFn func(token string) (*domain.TokenClaims, error)
}

var _ domain.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(userID uint, role string, sessionID string) (string, error) {
	return m.GenerateAccessTokenFn(userID, role, sessionID)
}

func (m *MockTokenService) GenerateRefreshToken(userID uint, role string, sessionID string) (string, error) {
	return m.GenerateRefreshTokenFn(userID, role, sessionID)
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	return m.ValidateAccessTokenFn(token)
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	return m.ValidateRefreshTokenFn(token)
}

// MockNotificationService implements domain.NotificationService
type MockNotificationService struct {
	SendEmailFn func(to, subject, body string) error
	SendSMSFn   func(to, message string) error
}

var _ domain.NotificationService = (*MockNotificationService)(nil)

func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFn == nil {
		return nil
	}
	return m.SendEmailFn(to, subject, body)
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFn == nil {
		return nil
	}
	return m.SendSMSFn(to, message)
}

// MockOTPService implements domain.OTPService
type MockOTPService struct {
	SendFn   func(ctx context.Context, resourceType, resourceID, email string) error
	VerifyFn func(ctx context.Context, resourceType, resourceID, code string) (*domain.VerificationResult, error)
}

var _ domain.OTPService = (*MockOTPService)(nil)

func (m *MockOTPService) Send(ctx context.Context, resourceType, resourceID, email string) error {
	return m.SendFn(ctx, resourceType, resourceID, email)
}

func (m *MockOTPService) Verify(ctx context.Context, resourceType, resourceID, code string) (*domain.VerificationResult, error) {
	return m.VerifyFn(ctx, resourceType, resourceID, code)
}

// MockKYCService implements domain.KYCService
type MockKYCService struct {
	ApproveFn       func(ctx context.Context, adminID, providerID uint) (*domain.User, error)
	RejectFn        func(ctx context.Context, adminID, providerID uint, reason string) (*domain.User, error)
	ListProvidersFn func(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error)
}

var _ domain.KYCService = (*MockKYCService)(nil)

func (m *MockKYCService) Approve(ctx context.Context, adminID, providerID uint) (*domain.User, error) {
	return m.ApproveFn(ctx, adminID, providerID)
}

func (m *MockKYCService) Reject(ctx context.Context, adminID, providerID uint, reason string) (*domain.User, error) {
	return m.RejectFn(ctx, adminID, providerID, reason)
}

func (m *MockKYCService) ListProviders(ctx context.Context, bucket domain.KYCBucket) ([]*domain.User, error) {
	return m.ListProvidersFn(ctx, bucket)
}

// MockAuthService implements domain.AuthService
type MockAuthService struct {
	RegisterFn       func(ctx context.Context, email, phone, password, role string) (*domain.User, error)
	LoginFn          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshTokenFn   func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFn         func(ctx context.Context, sessionID string) error
	GetUserProfileFn func(ctx context.Context, userID uint) (*domain.User, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) Register(ctx context.Context, email, phone, password, role string) (*domain.User, error) {
	return m.RegisterFn(ctx, email, phone, password, role)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return m.LoginFn(ctx, email, password)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	return m.RefreshTokenFn(ctx, refreshToken)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.LogoutFn(ctx, sessionID)
}

func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return m.GetUserProfileFn(ctx, userID)
}

// MockPolicyService implements domain.PolicyService
type MockPolicyService struct {
	AddPolicyFn       func(role, resource, action string) error
	RemovePolicyFn    func(role, resource, action string) error
	CheckPermissionFn func(role, resource, action string) (bool, error)
	GetPoliciesFn     func() [][]string
}

var _ domain.PolicyService = (*MockPolicyService)(nil)

func (m *MockPolicyService) AddPolicy(role, resource, action string) error {
	return m.AddPolicyFn(role, resource, action)
}

func (m *MockPolicyService) RemovePolicy(role, resource, action string) error {
	return m.RemovePolicyFn(role, resource, action)
}

func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	return m.CheckPermissionFn(role, resource, action)
}

func (m *MockPolicyService) GetPolicies() [][]string {
	return m.GetPoliciesFn()
}

// MockCasbinEnforcer implements domain.CasbinEnforcer
type MockCasbinEnforcer struct {
	AddPolicyFn    func(params ...interface{}) (bool, error)
	RemovePolicyFn func(params ...interface{}) (bool, error)
	EnforceFn      func(rvals ...interface{}) (bool, error)
	GetPolicyFn    func() ([][]string, error)
	SavePolicyFn   func() error
}

var _ domain.CasbinEnforcer = (*MockCasbinEnforcer)(nil)

func (m *MockCasbinEnforcer) AddPolicy(params ...interface{}) (bool, error) {
	return m.AddPolicyFn(params...)
}

func (m *MockCasbinEnforcer) RemovePolicy(params ...interface{}) (bool, error) {
	return m.RemovePolicyFn(params...)
}

func (m *MockCasbinEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	return m.EnforceFn(rvals...)
}

func (m *MockCasbinEnforcer) GetPolicy() ([][]string, error) { return m.GetPolicyFn() }

func (m *MockCasbinEnforcer) SavePolicy() error { return m.SavePolicyFn() }

// MockAuditLogger implements domain.AuditLogger and records the events it
// receives so tests can assert on them.
type MockAuditLogger struct {
	Events []*domain.AuditEvent
}

var _ domain.AuditLogger = (*MockAuditLogger)(nil)

func (m *MockAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) {
	m.Events = append(m.Events, event)
}
