package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func testConfig() *auth.AuthConfig {
	return &auth.AuthConfig{
		JWTSecret:     "test-signing-key",
		JWTTTL:        time.Hour,
		SessionSecret: "test-session-secret-32-bytes-long!",
		SessionMaxAge: 600,
	}
}

func newTestService(t *testing.T) (*auth.AuthService, *mocks.MockUserRepositoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := auth.NewAuthService(testConfig(), repo)
	require.NoError(t, err)
	return svc, repo
}

func newUser(t *testing.T, password string, admin bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     "jane.doe@example.com",
		FullName:     "Jane Doe",
		PasswordHash: hash,
		IsAdmin:      admin,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		err := cfg.ValidateConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing session secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionSecret = ""
		assert.EqualError(t, cfg.ValidateConfig(), "session secret is required")
	})

	t.Run("non positive max age", func(t *testing.T) {
		cfg := testConfig()
		cfg.SessionMaxAge = 0
		assert.Error(t, cfg.ValidateConfig())
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, auth.CheckPassword(hash, "s3cret!"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}

func TestJWT(t *testing.T) {
	svc, _ := newTestService(t)
	user := newUser(t, "pw", false)

	t.Run("round trip", func(t *testing.T) {
		token, expiresAt, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Username, claims.Username)
	})

	t.Run("expired token", func(t *testing.T) {
		auth.SetNow(svc, func() time.Time { return time.Now().Add(-2 * time.Hour) })
		token, _, err := svc.GenerateJWT(user)
		auth.SetNow(svc, time.Now)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		claims := &auth.AuthClaims{UserID: user.ID.String(), RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    auth.TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		svc, repo := newTestService(t)
		user := newUser(t, "s3cret!", false)
		repo.EXPECT().GetByUsername("jane.doe@example.com").Return(user, nil)

		resp, err := svc.Login("jane.doe@example.com", "s3cret!")
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any()).Return(newUser(t, "s3cret!", false), nil)

		_, err := svc.Login("jane.doe@example.com", "nope")
		assert.Error(t, err)
		assert.Equal(t, "invalid username or password", err.Error())
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetByUsername(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login("ghost@example.com", "x")
		assert.Equal(t, "invalid username or password", err.Error())
	})
}

func setupRouter(svc *auth.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := auth.NewAuthMiddleware(svc)
	h := auth.NewAuthHandler(svc)

	router.POST("/api/login", h.Login)
	router.POST("/api/logout", h.Logout)
	authed := router.Group("/api", mw.RequireAuth())
	authed.GET("/me", h.Me)
	authed.GET("/admin/ping", mw.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestMiddleware(t *testing.T) {
	t.Run("no credentials returns 401", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed authorization header returns 401", func(t *testing.T) {
		svc, _ := newTestService(t)
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token authenticates", func(t *testing.T) {
		svc, repo := newTestService(t)
		router := setupRouter(svc)
		user := newUser(t, "pw", false)
		token, _, err := svc.GenerateJWT(user)
		require.NoError(t, err)
		repo.EXPECT().GetByID(user.ID).Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.Username, body["username"])
		_, leaked := body["password_hash"]
		assert.False(t, leaked)
	})

	t.Run("non admin gets 403 on admin route", func(t *testing.T) {
		svc, repo := newTestService(t)
		router := setupRouter(svc)
		user := newUser(t, "pw", false)
		token, _, _ := svc.GenerateJWT(user)
		repo.EXPECT().GetByID(user.ID).Return(user, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("flag change applies on next request", func(t *testing.T) {
		svc, repo := newTestService(t)
		router := setupRouter(svc)
		user := newUser(t, "pw", false)
		token, _, _ := svc.GenerateJWT(user)
		promoted := *user
		promoted.IsAdmin = true
		repo.EXPECT().GetByID(user.ID).Return(&promoted, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deleted user is rejected", func(t *testing.T) {
		svc, repo := newTestService(t)
		router := setupRouter(svc)
		user := newUser(t, "pw", true)
		token, _, _ := svc.GenerateJWT(user)
		repo.EXPECT().GetByID(user.ID).Return(nil, gorm.ErrRecordNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSessionFlow(t *testing.T) {
	svc, repo := newTestService(t)
	router := setupRouter(svc)
	user := newUser(t, "s3cret!", true)

	repo.EXPECT().GetByUsername(user.Username).Return(user, nil)
	repo.EXPECT().GetByID(user.ID).Return(user, nil).Times(2)

	// login sets the session cookie
	body, _ := json.Marshal(auth.LoginRequest{Username: user.Username, Password: "s3cret!"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == auth.SessionName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	// cookie authenticates without a bearer token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// admin route accepts the session too
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// logout expires the cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionName {
			assert.True(t, c.MaxAge < 0)
		}
	}
}

func TestIdleSessionExpires(t *testing.T) {
	svc, repo := newTestService(t)
	router := setupRouter(svc)
	user := newUser(t, "s3cret!", false)
	repo.EXPECT().GetByUsername(user.Username).Return(user, nil)

	body, _ := json.Marshal(auth.LoginRequest{Username: user.Username, Password: "s3cret!"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	auth.SetNow(svc, func() time.Time { return time.Now().Add(11 * time.Minute) })
	defer func() { auth.SetNow(svc, time.Now) }()

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
