package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func protectedServer(tokens *utils.TokenManager) *echo.Echo {
	e := echo.New()
	whoami := func(c echo.Context) error {
		s, ok := SessionFrom(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.String(http.StatusOK, s.FirstName+":"+string(s.Role))
	}
	auth := Authenticate(tokens)
	e.GET("/me", whoami, auth)
	e.GET("/admin", whoami, auth, RequireRole(models.RoleAdmin))
	return e
}

func TestAuthenticate(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	e := protectedServer(tokens)
	userID := primitive.NewObjectID().Hex()

	userToken, err := tokens.Issue(userID, "user", "Asha")
	require.NoError(t, err)
	adminToken, err := tokens.Issue(userID, "admin", "Ravi")
	require.NoError(t, err)
	badSubject, err := tokens.Issue("not-an-object-id", "user", "Asha")
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
		body   string
	}{
		{"no header", "/me", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "/me", "Basic " + userToken, http.StatusUnauthorized, ""},
		{"garbage token", "/me", "Bearer abc.def.ghi", http.StatusUnauthorized, ""},
		{"bad subject", "/me", "Bearer " + badSubject, http.StatusUnauthorized, ""},
		{"user", "/me", "Bearer " + userToken, http.StatusOK, "Asha:user"},
		{"lowercase scheme", "/me", "bearer " + userToken, http.StatusOK, "Asha:user"},
		{"user on admin route", "/admin", "Bearer " + userToken, http.StatusForbidden, ""},
		{"admin", "/admin", "Bearer " + adminToken, http.StatusOK, "Ravi:admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.path, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{}.Expired(now))
}

func TestRequireRoleWithoutSession(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RequireRole(models.RoleAdmin))

	rec := serve(e, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsCountsRoutes(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/widgets/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	counter := httpRequests.WithLabelValues(http.MethodGet, "/widgets/:id", "204")
	before := testutil.ToFloat64(counter)
	serve(e, http.MethodGet, "/widgets/1", "")
	serve(e, http.MethodGet, "/widgets/2", "")
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestResponseCacheWithoutRedis(t *testing.T) {
	calls := 0
	rc := NewResponseCache(nil, time.Minute, "test")
	e := echo.New()
	e.GET("/items", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"n": calls})
	}, rc.Cache())
	e.POST("/items", func(c echo.Context) error { return c.NoContent(http.StatusCreated) }, rc.PurgeOnWrite())

	serve(e, http.MethodGet, "/items", "")
	rec := serve(e, http.MethodGet, "/items", "")
	assert.Equal(t, 2, calls)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Equal(t, http.StatusCreated, serve(e, http.MethodPost, "/items", "").Code)
}

func TestResponseCacheServesWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	rc := NewResponseCache(rdb, time.Minute, "test")

	e := echo.New()
	e.GET("/items", func(c echo.Context) error { return c.JSON(http.StatusOK, echo.Map{"ok": true}) }, rc.Cache())

	rec := serve(e, http.MethodGet, "/items", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
