package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// KYCHandlers handles the admin-facing provider verification endpoints
type KYCHandlers struct {
	kycSvc domain.KYCService
}

// NewKYCHandlers creates new KYC handlers
func NewKYCHandlers(kycSvc domain.KYCService) *KYCHandlers {
	return &KYCHandlers{kycSvc: kycSvc}
}

// KYCRejectRequest represents a rejection request
type KYCRejectRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

// Approve handles provider approval (and re-approval from rejected)
func (h *KYCHandlers) Approve(c *gin.Context) {
	providerID, ok := h.targetProviderID(c)
	if !ok {
		return
	}
	adminID, ok := h.actingAdminID(c)
	if !ok {
		return
	}

	provider, err := h.kycSvc.Approve(c.Request.Context(), adminID, providerID)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": providerResponse(provider)})
}

// Reject handles provider rejection
func (h *KYCHandlers) Reject(c *gin.Context) {
	providerID, ok := h.targetProviderID(c)
	if !ok {
		return
	}
	adminID, ok := h.actingAdminID(c)
	if !ok {
		return
	}

	var req KYCRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	provider, err := h.kycSvc.Reject(c.Request.Context(), adminID, providerID, req.RejectionReason)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": providerResponse(provider)})
}

// List handles the admin dashboard provider listing
func (h *KYCHandlers) List(c *gin.Context) {
	bucket := domain.KYCBucket(c.DefaultQuery("status", string(domain.KYCBucketPending)))

	providers, err := h.kycSvc.ListProviders(c.Request.Context(), bucket)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKYCBucket) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list providers"})
		return
	}

	items := make([]gin.H, 0, len(providers))
	for _, p := range providers {
		items = append(items, providerResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *KYCHandlers) targetProviderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *KYCHandlers) actingAdminID(c *gin.Context) (uint, bool) {
	// Set by the auth middleware; the casbin middleware has already
	// established that this caller may perform admin actions.
	idStr, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return 0, false
	}
	id, err := strconv.ParseUint(idStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return uint(id), true
}

func (h *KYCHandlers) writeDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
	case errors.Is(err, domain.ErrNotProvider):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account is not a service provider"})
	case errors.Is(err, domain.ErrEmptyRejectionReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
	}
}

func providerResponse(u *domain.User) gin.H {
	resp := gin.H{
		"id":           u.ID,
		"email":        u.Email,
		"phone":        u.Phone,
		"role":         u.Role,
		"is_active":    u.IsActive,
		"kyc_verified": u.KYC.Verified,
		"kyc_rejected": u.KYC.Rejected,
		"kyc_status":   u.KYC.Bucket(),
	}
	if u.KYC.RejectionReason != "" {
		resp["rejection_reason"] = u.KYC.RejectionReason
	}
	if u.KYC.VerifiedAt != nil {
		resp["verified_at"] = u.KYC.VerifiedAt
		resp["verified_by"] = u.KYC.VerifiedBy
	}
	return resp
}
