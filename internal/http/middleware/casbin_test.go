package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
)

const testModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := model.NewModelFromString(testModel)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)

	_, err = e.AddPolicies([][]string{
		{"role_admin", "/admin/*", "GET"},
		{"role_admin", "/admin/*", "PUT"},
		{"role_owner_self", "/verifications/*", "GET"},
	})
	require.NoError(t, err)
	return e
}

func newCasbinTestRouter(e *casbin.Enforcer, rules []config.OwnershipRule, userID, role string) *gin.Engine {
	mw := NewCasbinMW(e, rules)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
	}, mw.Enforce())
	r.GET("/admin/providers", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PUT("/admin/providers/:id/approve", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/verifications/:type/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, method, path string) int {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestCasbinMW_AdminAllowed(t *testing.T) {
	r := newCasbinTestRouter(newTestEnforcer(t), nil, "1", "admin")

	assert.Equal(t, http.StatusOK, get(r, http.MethodGet, "/admin/providers"))
	assert.Equal(t, http.StatusOK, get(r, http.MethodPut, "/admin/providers/7/approve"))
}

func TestCasbinMW_NonAdminDenied(t *testing.T) {
	r := newCasbinTestRouter(newTestEnforcer(t), nil, "7", "provider")

	assert.Equal(t, http.StatusForbidden, get(r, http.MethodGet, "/admin/providers"))
	assert.Equal(t, http.StatusForbidden, get(r, http.MethodPut, "/admin/providers/7/approve"))
}

func TestCasbinMW_OwnershipBypass(t *testing.T) {
	rules := []config.OwnershipRule{
		{Method: "GET", Path: "/verifications/:type/:id", Source: "path", ParamName: "id"},
	}

	// The caller's own resource id matches, so the owner_self policy applies.
	r := newCasbinTestRouter(newTestEnforcer(t), rules, "7", "owner")
	assert.Equal(t, http.StatusOK, get(r, http.MethodGet, "/verifications/pet/7"))

	// A different resource id is still denied.
	assert.Equal(t, http.StatusForbidden, get(r, http.MethodGet, "/verifications/pet/8"))
}

func TestCasbinMW_NoRulesMeansNoBypass(t *testing.T) {
	// Even when the path id happens to equal the caller's user id, the
	// owner_self policy is unreachable without a configured rule.
	r := newCasbinTestRouter(newTestEnforcer(t), nil, "7", "owner")

	assert.Equal(t, http.StatusForbidden, get(r, http.MethodGet, "/verifications/pet/7"))
}

func TestCasbinMW_MissingIdentity(t *testing.T) {
	mw := NewCasbinMW(newTestEnforcer(t), nil)
	r := gin.New()
	r.Use(mw.Enforce())
	r.GET("/admin/providers", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, get(r, http.MethodGet, "/admin/providers"))
}
