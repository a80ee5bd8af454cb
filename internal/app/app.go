package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
	httpx "github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/handlers"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/middleware"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/audit"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/auth"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/database"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/notifications"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/repositories"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/services"
)

// Build wires the whole dependency graph from config. It connects to
// Postgres and Redis, so it fails fast when either is unreachable.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	casbinSvc, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize casbin: %w", err)
	}

	c := &Container{Config: cfg, Logger: logger, DB: db, Redis: rdb, Casbin: casbinSvc}

	c.UserRepo = repositories.NewUserRepository(db)
	c.SessionRepo = repositories.NewSessionRepository(rdb.Client, cfg.RefreshTTL)
	c.OTPStore = repositories.NewOTPStore(rdb.Client)
	c.VerificationRepo = repositories.NewVerificationRepository(db)
	c.AnnouncementRepo = repositories.NewAnnouncementRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	mailer := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFromName)
	c.NotificationSvc = notifications.NewService(mailer, cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	c.Audit = audit.NewZapAuditLogger(logger)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.SessionRepo, c.PasswordSvc, c.TokenSvc, c.Audit, cfg.RefreshTTL, cfg.AccessTTL)
	c.OTPSvc = services.NewOTPService(c.OTPStore, c.VerificationRepo, c.NotificationSvc, c.Audit, services.OTPConfig{
		Length:       cfg.OTPLength,
		TTL:          cfg.OTPTTL,
		MaxAttempts:  cfg.OTPMaxAttempts,
		ResendWindow: cfg.OTPResendWindow,
	})
	c.KYCSvc = services.NewKYCService(c.UserRepo, c.NotificationSvc, c.Audit, logger)
	c.AnnouncementSvc = services.NewAnnouncementService(c.AnnouncementRepo)
	c.PolicySvc = services.NewPolicyService(casbinSvc.E)

	if err := seedDefaultPolicies(c.PolicySvc); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}

	c.AuthHandlers = handlers.NewAuthHandlers(c.AuthSvc)
	c.OTPHandlers = handlers.NewOTPHandlers(c.OTPSvc, c.VerificationRepo)
	c.KYCHandlers = handlers.NewKYCHandlers(c.KYCSvc)
	c.AnnouncementHandlers = handlers.NewAnnouncementHandlers(c.AnnouncementSvc)
	c.PolicyHandlers = handlers.NewPolicyHandlers(c.PolicySvc)

	c.AuthMW = middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	c.CasbinMW = middleware.NewCasbinMW(casbinSvc.E, cfg.OwnershipRules)

	c.Router = httpx.BuildRouter(logger, c.AuthHandlers, c.OTPHandlers, c.KYCHandlers, c.AnnouncementHandlers, c.PolicyHandlers, c.AuthMW, c.CasbinMW)
	return c, nil
}

// Run builds the container and serves HTTP until the listener fails.
func Run(cfg *config.Config, logger *zap.Logger) error {
	c, err := Build(cfg, logger)
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))
	return c.Router.Run(addr)
}

// seedDefaultPolicies installs the baseline RBAC policies on an empty
// policy store. An already-populated store is left untouched so that
// runtime policy edits survive restarts.
func seedDefaultPolicies(policySvc domain.PolicyService) error {
	if len(policySvc.GetPolicies()) > 0 {
		return nil
	}

	defaults := [][]string{
		{"role_admin", "/admin/*", "GET"},
		{"role_admin", "/admin/*", "POST"},
		{"role_admin", "/admin/*", "PUT"},
		{"role_admin", "/admin/*", "DELETE"},
		{"role_admin", "/auth/me", "GET"},
		{"role_admin", "/auth/logout", "POST"},
		{"role_admin", "/announcements", "GET"},
		{"role_admin", "/verifications/*", "GET"},
		{"role_owner", "/auth/me", "GET"},
		{"role_owner", "/auth/logout", "POST"},
		{"role_owner", "/announcements", "GET"},
		{"role_provider", "/auth/me", "GET"},
		{"role_provider", "/auth/logout", "POST"},
		{"role_provider", "/announcements", "GET"},
	}
	for _, p := range defaults {
		if err := policySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}
