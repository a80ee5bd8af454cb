package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
)

// CasbinMW wraps the casbin enforcer and ownership rules for middleware
type CasbinMW struct {
	enforcer *casbin.Enforcer
	rules    []config.OwnershipRule
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer, rules []config.OwnershipRule) *CasbinMW {
	return &CasbinMW{enforcer: enforcer, rules: rules}
}

// Enforce returns the casbin authorization middleware. The capability check
// happens once here, at the request boundary; handlers never inspect roles.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		tokenUserID, userExists := c.Get("user_id")
		primaryRole, roleExists := c.Get("user_role")
		if !userExists || !roleExists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID or role not found in token"})
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		method := c.Request.Method

		// Ownership check against the configured rules: a user acting on
		// its own resource may match the special role_owner policies.
		isOwner := false
		for _, rule := range mw.rules {
			if rule.Path == c.FullPath() && rule.Method == method {
				requestUserID := extractUserID(c, rule.Source, rule.ParamName)
				if requestUserID != "" && requestUserID == tokenUserID.(string) {
					isOwner = true
					break
				}
			}
		}

		casbinRole := "role_" + primaryRole.(string)
		allowed, err := mw.enforcer.Enforce(casbinRole, path, method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		if !allowed && isOwner {
			allowed, err = mw.enforcer.Enforce("role_owner_self", path, method)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed for owner"})
				c.Abort()
				return
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
			c.Abort()
			return
		}

		c.Next()
	})
}

// extractUserID pulls the resource owner's user id from the request
// according to the rule's source.
func extractUserID(c *gin.Context, source, paramName string) string {
	switch source {
	case "path":
		return c.Param(paramName)
	case "query":
		return c.Query(paramName)
	case "header":
		return c.GetHeader(paramName)
	default:
		return ""
	}
}
