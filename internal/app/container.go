package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/handlers"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/http/middleware"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/auth"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/database"
)

// Container holds every wired dependency of the service. Everything is
// constructed once in Build and handed to the router.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	DB    *gorm.DB
	Redis *database.RedisClient

	Casbin *auth.CasbinService

	UserRepo         domain.UserRepository
	SessionRepo      domain.SessionRepository
	OTPStore         domain.OTPStore
	VerificationRepo domain.VerificationRepository
	AnnouncementRepo domain.AnnouncementRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Audit           domain.AuditLogger

	AuthSvc         domain.AuthService
	OTPSvc          domain.OTPService
	KYCSvc          domain.KYCService
	AnnouncementSvc domain.AnnouncementService
	PolicySvc       domain.PolicyService

	AuthHandlers         *handlers.AuthHandlers
	OTPHandlers          *handlers.OTPHandlers
	KYCHandlers          *handlers.KYCHandlers
	AnnouncementHandlers *handlers.AnnouncementHandlers
	PolicyHandlers       *handlers.PolicyHandlers

	AuthMW   *middleware.AuthMW
	CasbinMW *middleware.CasbinMW

	Router *gin.Engine
}
