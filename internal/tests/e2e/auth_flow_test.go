package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	httpx "github.com/you/beautyauthsvc/internal/http"
	"github.com/you/beautyauthsvc/internal/http/handlers"
	"github.com/you/beautyauthsvc/internal/http/middleware"
	"github.com/you/beautyauthsvc/internal/infrastructure/auth"
	"github.com/you/beautyauthsvc/internal/infrastructure/repositories"
	"github.com/you/beautyauthsvc/internal/services"
)

// buildTestServer wires the whole stack against in-memory storage: sqlite
// behind gorm and miniredis behind the profile cache. Only the listener is
// missing compared to production wiring.
func buildTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBSession{},
		&repositories.DBProfile{},
	))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := zerolog.Nop()

	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db, 30*24*time.Hour)
	profileRepo := repositories.NewProfileRepository(db)
	profileCache := repositories.NewProfileCache(redisClient, 5*time.Minute)

	passwordSvc := auth.NewPasswordService(bcrypt.MinCost)
	tokenSvc := auth.NewJWTService("e2e-test-secret", "beautyauthsvc", time.Hour)

	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, logger)
	profileSvc := services.NewProfileService(profileRepo, profileCache, logger)

	return httpx.BuildRouter(
		handlers.NewAuthHandlers(authSvc),
		handlers.NewProfileHandlers(profileSvc),
		middleware.NewAuthMW(tokenSvc),
	)
}

func do(t *testing.T, router *gin.Engine, method, path, bearer string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "body: %s", w.Body.String())
	}
	return w, decoded
}

func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected a data envelope, got %+v", body)
	return d
}

func TestFullAccountLifecycle(t *testing.T) {
	router := buildTestServer(t)

	// Register.
	w, body := do(t, router, http.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@b.com", "username": "Alice", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := data(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, w.Body.String(), "password")

	// Registering the same email again conflicts.
	w, _ = do(t, router, http.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@b.com", "username": "Alice2", "password": "secret456"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login.
	w, body = do(t, router, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "a@b.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := data(t, body)
	accessToken := login["access_token"].(string)
	refreshToken := login["refresh_token"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.Equal(t, "Bearer", login["token_type"])

	// The access token opens guarded routes.
	w, body = do(t, router, http.MethodGet, "/auth/me", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	me := data(t, body)["user"].(map[string]interface{})
	assert.Equal(t, "Alice", me["username"])

	// No profile yet.
	w, _ = do(t, router, http.MethodGet, "/profile/beauty", accessToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Create the profile.
	w, body = do(t, router, http.MethodPost, "/profile/beauty", accessToken,
		map[string]interface{}{"personalColor": "bright_spring", "skinUndertone": "warm"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	profile := data(t, body)["profile"].(map[string]interface{})
	assert.Equal(t, "bright_spring", profile["personal_color"])

	// Creating it twice conflicts.
	w, _ = do(t, router, http.MethodPost, "/profile/beauty", accessToken,
		map[string]interface{}{"personalColor": "true_winter", "skinUndertone": "cool"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Partial update touches only the supplied fields.
	w, body = do(t, router, http.MethodPut, "/profile/beauty", accessToken,
		map[string]interface{}{"priceRangeMin": 10000, "priceRangeMax": 30000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile = data(t, body)["profile"].(map[string]interface{})
	assert.Equal(t, float64(10000), profile["price_range_min"])
	assert.Equal(t, "bright_spring", profile["personal_color"], "untouched field must survive the update")

	// A bad value anywhere rejects the whole update and changes nothing.
	w, _ = do(t, router, http.MethodPut, "/profile/beauty", accessToken,
		map[string]interface{}{"priceRangeMin": 99999, "skinType": "reptilian"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, body = do(t, router, http.MethodGet, "/profile/beauty", accessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile = data(t, body)["profile"].(map[string]interface{})
	assert.Equal(t, float64(10000), profile["price_range_min"], "rejected update must leave the row alone")

	// Rotate the refresh token.
	w, body = do(t, router, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refresh_token": refreshToken})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := data(t, body)
	newRefresh := rotated["refresh_token"].(string)
	require.NotEmpty(t, rotated["access_token"])
	require.NotEqual(t, refreshToken, newRefresh)

	// The spent token is one-time use.
	w, _ = do(t, router, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refresh_token": refreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout, twice; both read the same.
	for i := 0; i < 2; i++ {
		w, _ = do(t, router, http.MethodPost, "/auth/logout", "",
			map[string]string{"refresh_token": newRefresh})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// The revoked session cannot rotate.
	w, _ = do(t, router, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refresh_token": newRefresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedRoutesRejectAnonymous(t *testing.T) {
	router := buildTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/profile/beauty"},
		{http.MethodPost, "/profile/beauty"},
		{http.MethodPut, "/profile/beauty"},
	} {
		w, body := do(t, router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.Equal(t, "Invalid or expired token", body["error"], "%s %s", route.method, route.path)
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	router := buildTestServer(t)

	w, _ := do(t, router, http.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@b.com", "username": "Alice", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := do(t, router, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "a@b.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	firstRefresh := data(t, body)["refresh_token"].(string)

	w, body = do(t, router, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "a@b.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	secondRefresh := data(t, body)["refresh_token"].(string)
	require.NotEqual(t, firstRefresh, secondRefresh)

	// The earlier session died with the second login.
	w, _ = do(t, router, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refresh_token": firstRefresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, router, http.MethodPost, "/auth/refresh", "",
		map[string]string{"refresh_token": secondRefresh})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailures(t *testing.T) {
	router := buildTestServer(t)

	w, _ := do(t, router, http.MethodPost, "/auth/register", "",
		map[string]string{"email": "a@b.com", "username": "Alice", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Unknown email is a 404, a wrong password a 401.
	w, _ = do(t, router, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "nobody@b.com", "password": "secret123"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodPost, "/auth/login", "",
		map[string]string{"email": "a@b.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
