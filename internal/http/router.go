package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/handlers"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/middleware"
)

func BuildRouter(
	logger *zap.Logger,
	ah *handlers.AuthHandlers,
	oh *handlers.OTPHandlers,
	kh *handlers.KYCHandlers,
	nh *handlers.AnnouncementHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	// The OTP flow is reached from checkout before the buyer has an
	// account, so it is deliberately unauthenticated.
	otp := r.Group("/otp")
	otp.POST("/send", oh.Send)
	otp.POST("/verify", oh.Verify)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.GET("/announcements", nh.List)
	v.GET("/verifications/:type/:id", oh.GetVerification)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/providers", kh.List)
	adm.PUT("/providers/:id/approve", kh.Approve)
	adm.PUT("/providers/:id/reject", kh.Reject)
	adm.POST("/announcements", nh.Publish)
	adm.DELETE("/announcements/:id", nh.Remove)
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}

// requestLogger logs one structured line per request
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
