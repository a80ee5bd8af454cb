package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newOTPRouter(otpSvc domain.OTPService, verRepo domain.VerificationRepository) *gin.Engine {
	h := NewOTPHandlers(otpSvc, verRepo)
	r := gin.New()
	r.POST("/otp/send", h.Send)
	r.POST("/otp/verify", h.Verify)
	r.GET("/verifications/:type/:id", h.GetVerification)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOTPHandlers_Send(t *testing.T) {
	var gotType, gotID, gotEmail string
	svc := &mocks.MockOTPService{
		SendFn: func(ctx context.Context, resourceType, resourceID, email string) error {
			gotType, gotID, gotEmail = resourceType, resourceID, email
			return nil
		},
	}
	r := newOTPRouter(svc, &mocks.MockVerificationRepository{})

	w := doJSON(t, r, http.MethodPost, "/otp/send", gin.H{
		"resource_type": "pet",
		"resource_id":   "42",
		"email":         "owner@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pet", gotType)
	assert.Equal(t, "42", gotID)
	assert.Equal(t, "owner@example.com", gotEmail)
	assert.Contains(t, w.Body.String(), "OTP sent successfully")
}

func TestOTPHandlers_SendValidation(t *testing.T) {
	r := newOTPRouter(&mocks.MockOTPService{}, &mocks.MockVerificationRepository{})

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"resource_type": "pet", "resource_id": "42"}},
		{"bad email", gin.H{"resource_type": "pet", "resource_id": "42", "email": "nope"}},
		{"missing resource", gin.H{"email": "owner@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/otp/send", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestOTPHandlers_SendThrottled(t *testing.T) {
	svc := &mocks.MockOTPService{
		SendFn: func(ctx context.Context, resourceType, resourceID, email string) error {
			return domain.ErrOTPResendThrottled
		},
	}
	r := newOTPRouter(svc, &mocks.MockVerificationRepository{})

	w := doJSON(t, r, http.MethodPost, "/otp/send", gin.H{
		"resource_type": "pet", "resource_id": "42", "email": "owner@example.com",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestOTPHandlers_VerifySuccess(t *testing.T) {
	svc := &mocks.MockOTPService{
		VerifyFn: func(ctx context.Context, resourceType, resourceID, code string) (*domain.VerificationResult, error) {
			return &domain.VerificationResult{Valid: true, Message: "resource verified successfully", TransactionID: "txn-1"}, nil
		},
	}
	r := newOTPRouter(svc, &mocks.MockVerificationRepository{})

	w := doJSON(t, r, http.MethodPost, "/otp/verify", gin.H{
		"resource_type": "pet", "resource_id": "42", "otp": "123456",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Success       bool   `json:"success"`
			TransactionID string `json:"transaction_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Success)
	assert.Equal(t, "txn-1", resp.Data.TransactionID)
}

func TestOTPHandlers_VerifyErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"wrong code is retryable", domain.ErrOTPInvalid, http.StatusBadRequest, "incorrect code"},
		{"missing or expired", domain.ErrOTPNotFound, http.StatusBadRequest, "invalid or expired code"},
		{"attempts exhausted", domain.ErrOTPMaxAttempts, http.StatusTooManyRequests, "Maximum attempts exceeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockOTPService{
				VerifyFn: func(ctx context.Context, resourceType, resourceID, code string) (*domain.VerificationResult, error) {
					return nil, tc.err
				},
			}
			r := newOTPRouter(svc, &mocks.MockVerificationRepository{})

			w := doJSON(t, r, http.MethodPost, "/otp/verify", gin.H{
				"resource_type": "pet", "resource_id": "42", "otp": "123456",
			})
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestOTPHandlers_GetVerification(t *testing.T) {
	verRepo := &mocks.MockVerificationRepository{
		FindByResourceFn: func(ctx context.Context, resourceType, resourceID string) (*domain.Verification, error) {
			if resourceID != "42" {
				return nil, domain.ErrResourceNotFound
			}
			return &domain.Verification{
				ResourceType: resourceType, ResourceID: resourceID,
				TransactionID: "txn-1", VerifiedAt: time.Now().UTC(),
			}, nil
		},
	}
	r := newOTPRouter(&mocks.MockOTPService{}, verRepo)

	w := doJSON(t, r, http.MethodGet, "/verifications/pet/42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn-1")

	w = doJSON(t, r, http.MethodGet, "/verifications/pet/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
