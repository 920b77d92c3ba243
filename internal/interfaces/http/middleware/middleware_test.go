package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/application/subscription/services"
	vo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
	"github.com/darna-inc/darna/internal/domain/user"
	uservo "github.com/darna-inc/darna/internal/domain/user/valueobjects"
	"github.com/darna-inc/darna/internal/infrastructure/auth"
	"github.com/darna-inc/darna/internal/infrastructure/ratelimit"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool             `json:"success"`
	Error   *utils.ErrorInfo `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *utils.ErrorInfo {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return body.Error
}

type mockIdentities struct {
	user *user.User
	err  error
}

func (m *mockIdentities) GetByEmail(context.Context, string) (*user.User, error) {
	return m.user, m.err
}

func agencyUser(t *testing.T) *user.User {
	t.Helper()
	email, err := uservo.NewEmail("agency@example.com")
	require.NoError(t, err)
	now := time.Now().UTC()
	u, err := user.ReconstructUser(7, "Agency", email, "", authorization.RoleAgency, "hash", now, now)
	require.NoError(t, err)
	return u
}

func newAuthRouter(mw *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})
	return r
}

func TestAuthMiddleware_ResolvesBearerToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 60)
	token, err := jwtSvc.Generate("agency@example.com", authorization.RoleAdmin)
	require.NoError(t, err)
	r := newAuthRouter(NewAuthMiddleware(jwtSvc, &mockIdentities{user: agencyUser(t)}, logger.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// The stored role wins over the role embedded in the token.
	assert.JSONEq(t, `{"user_id":7,"role":"agency"}`, w.Body.String())
}

func TestAuthMiddleware_AcceptsQueryToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 60)
	token, err := jwtSvc.Generate("agency@example.com", authorization.RoleAgency)
	require.NoError(t, err)
	r := newAuthRouter(NewAuthMiddleware(jwtSvc, &mockIdentities{user: agencyUser(t)}, logger.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token.Token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 60)
	valid, err := jwtSvc.Generate("agency@example.com", authorization.RoleAgency)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		identities *mockIdentities
		wantStatus int
	}{
		{name: "missing token", identities: &mockIdentities{}, wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", identities: &mockIdentities{}, wantStatus: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer not-a-jwt", identities: &mockIdentities{}, wantStatus: http.StatusUnauthorized},
		{name: "deleted user", header: "Bearer " + valid.Token, identities: &mockIdentities{}, wantStatus: http.StatusUnauthorized},
		{name: "store failure", header: "Bearer " + valid.Token, identities: &mockIdentities{err: errors.New("db down")}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(NewAuthMiddleware(jwtSvc, tt.identities, logger.NewNop()))
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

type mockGate struct {
	decision *services.Decision
	err      error
	caller   services.Caller
	required []vo.FeatureTag
}

func (m *mockGate) Check(_ context.Context, caller services.Caller, required ...vo.FeatureTag) (*services.Decision, error) {
	m.caller = caller
	m.required = required
	return m.decision, m.err
}

func newGateRouter(gate AccessChecker, userID uint, role authorization.UserRole) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(constants.ContextKeyUserID, userID)
			c.Set(constants.ContextKeyUserRole, role.String())
		}
		c.Next()
	})
	mw := NewSubscriptionGateMiddleware(gate, logger.NewNop())
	r.POST("/property", mw.RequireFeatures(vo.FeatureProperties), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestSubscriptionGate_Admits(t *testing.T) {
	gate := &mockGate{decision: &services.Decision{Admitted: true, Code: services.CodeAdmitted}}
	r := newGateRouter(gate, 5, authorization.RoleIndividual)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, services.Caller{ID: 5, Role: authorization.RoleIndividual}, gate.caller)
	assert.Equal(t, []vo.FeatureTag{vo.FeatureProperties}, gate.required)
}

func TestSubscriptionGate_DenialCarriesReason(t *testing.T) {
	gate := &mockGate{decision: &services.Decision{Code: services.CodeQuotaExceeded, Reason: services.ReasonQuotaExceeded}}
	r := newGateRouter(gate, 5, authorization.RoleIndividual)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property", nil))

	require.Equal(t, http.StatusForbidden, w.Code)
	info := decodeError(t, w)
	assert.Equal(t, "quota exceeded", info.Message)
	assert.Equal(t, services.CodeQuotaExceeded, info.Reason)
}

func TestSubscriptionGate_StoreErrorIsServerError(t *testing.T) {
	r := newGateRouter(&mockGate{err: errors.New("db down")}, 5, authorization.RoleIndividual)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubscriptionGate_RequiresIdentity(t *testing.T) {
	gate := &mockGate{}
	r := newGateRouter(gate, 0, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/property", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, gate.caller.ID)
}

type mockEnforcer struct {
	allowed bool
	err     error
	role    string
}

func (m *mockEnforcer) Enforce(role, _, _ string) (bool, error) {
	m.role = role
	return m.allowed, m.err
}

func TestPermissionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		authed     bool
		enforcer   *mockEnforcer
		wantStatus int
	}{
		{name: "allowed", authed: true, enforcer: &mockEnforcer{allowed: true}, wantStatus: http.StatusOK},
		{name: "denied", authed: true, enforcer: &mockEnforcer{}, wantStatus: http.StatusForbidden},
		{name: "enforcer failure", authed: true, enforcer: &mockEnforcer{err: errors.New("boom")}, wantStatus: http.StatusInternalServerError},
		{name: "anonymous", enforcer: &mockEnforcer{allowed: true}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tt.authed {
					c.Set(constants.ContextKeyUserID, uint(1))
					c.Set(constants.ContextKeyUserRole, "employee")
				}
			})
			mw := NewPermissionMiddleware(tt.enforcer, logger.NewNop())
			r.PUT("/plans/:id", mw.RequirePermission("plans", "write"), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/plans/1", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.authed {
				assert.Equal(t, "employee", tt.enforcer.role)
			}
		})
	}
}

func TestRateLimitMiddleware_BlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	mw := NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(client), ratelimit.Limit{Requests: 2, Window: time.Minute}, logger.NewNop())
	r := gin.New()
	r.POST("/api/auth/signin", mw.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	mw := NewRateLimitMiddleware(ratelimit.NewRedisRateLimiter(client), ratelimit.Limit{Requests: 1, Window: time.Minute}, logger.NewNop())
	r := gin.New()
	r.POST("/signin", mw.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/signin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(constants.HeaderXRequestID))
	assert.Equal(t, "req-1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)
}

type recordingObserver struct {
	route  string
	status int
}

func (o *recordingObserver) ObserveHTTP(_, route string, status int, _ float64) {
	o.route = route
	o.status = status
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/api/property/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/property/42", nil))

	assert.Equal(t, "/api/property/:id", obs.route)
	assert.Equal(t, http.StatusNoContent, obs.status)
}

func TestRecovery_ReturnsServerError(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()))
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", 60)
	token, err := jwtSvc.Generate("agency@example.com", authorization.RoleAgency)
	require.NoError(t, err)
	mw := NewAuthMiddleware(jwtSvc, &mockIdentities{user: agencyUser(t)}, logger.NewNop())

	r := gin.New()
	r.GET("/list", mw.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(constants.ContextKeyUserID)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list", nil))
	assert.JSONEq(t, `{"user_id":0}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/list", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/list", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
