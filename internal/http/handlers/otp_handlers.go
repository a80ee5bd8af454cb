package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// OTPHandlers handles resource verification HTTP requests
type OTPHandlers struct {
	otpSvc        domain.OTPService
	verifications domain.VerificationRepository
}

// NewOTPHandlers creates new OTP handlers
func NewOTPHandlers(otpSvc domain.OTPService, verifications domain.VerificationRepository) *OTPHandlers {
	return &OTPHandlers{
		otpSvc:        otpSvc,
		verifications: verifications,
	}
}

// OTPSendRequest represents an OTP issuance request
type OTPSendRequest struct {
	ResourceType string `json:"resource_type" binding:"required"`
	ResourceID   string `json:"resource_id" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
}

// OTPVerifyRequest represents an OTP verification request
type OTPVerifyRequest struct {
	ResourceType string `json:"resource_type" binding:"required"`
	ResourceID   string `json:"resource_id" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

// Send handles OTP generation and delivery
func (h *OTPHandlers) Send(c *gin.Context) {
	var req OTPSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.otpSvc.Send(c.Request.Context(), req.ResourceType, req.ResourceID, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrOTPResendThrottled) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "OTP sent successfully",
		},
	})
}

// Verify handles OTP verification
func (h *OTPHandlers) Verify(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.otpSvc.Verify(c.Request.Context(), req.ResourceType, req.ResourceID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPInvalid):
			// A mismatch leaves the code live, so the caller may retry
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "incorrect code"})
		case errors.Is(err, domain.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid or expired code"})
		case errors.Is(err, domain.ErrOTPMaxAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Maximum attempts exceeded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OTP verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"success":        true,
			"message":        result.Message,
			"resource_type":  req.ResourceType,
			"resource_id":    req.ResourceID,
			"transaction_id": result.TransactionID,
		},
	})
}

// GetVerification reports whether a resource has passed verification
func (h *OTPHandlers) GetVerification(c *gin.Context) {
	resourceType := c.Param("type")
	resourceID := c.Param("id")

	v, err := h.verifications.FindByResource(c.Request.Context(), resourceType, resourceID)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not verified"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up verification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"resource_type":  v.ResourceType,
			"resource_id":    v.ResourceID,
			"transaction_id": v.TransactionID,
			"verified_at":    v.VerifiedAt,
		},
	})
}
