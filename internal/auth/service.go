package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"
)

const (
	sessionUserIDKey       = "user_id"
	sessionLastActivityKey = "last_activity"
	tokenIssuer            = "inspection-scheduler-backend"
)

// AuthService authenticates users by password and resolves the caller of a
// request from either the session cookie or a bearer token.
type AuthService struct {
	config   *AuthConfig
	store    *sessions.CookieStore
	userRepo repository.UserRepositoryInterface
	now      func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"5f0c6f3e-2d7a-4a4e-9a55-0c1f3c1b8a11"`
	Username             string `json:"username" example:"jane.doe@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	store := sessions.NewCookieStore([]byte(config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   config.SessionMaxAge,
		HttpOnly: true,
		Secure:   config.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}

	return &AuthService{
		config:   config,
		store:    store,
		userRepo: userRepo,
		now:      time.Now,
	}, nil
}

// Login verifies the credentials and returns the user together with a bearer token
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GenerateJWT issues an HS256 token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.JWTTTL)
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateJWT parses and validates a token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// StartSession stores the user id in a fresh session cookie
func (s *AuthService) StartSession(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, _ := s.store.Get(r, SessionName)
	session.Values[sessionUserIDKey] = userID.String()
	session.Values[sessionLastActivityKey] = s.now().Unix()
	session.Options.MaxAge = s.config.SessionMaxAge
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// EndSession expires the session cookie
func (s *AuthService) EndSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName)
	delete(session.Values, sessionUserIDKey)
	delete(session.Values, sessionLastActivityKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// sessionUserID returns the user id of a live session and refreshes its
// activity stamp. Idle sessions are expired.
func (s *AuthService) sessionUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	session, err := s.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return uuid.Nil, false
	}

	raw, ok := session.Values[sessionUserIDKey].(string)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	now := s.now()
	lastActivity, ok := session.Values[sessionLastActivityKey].(int64)
	if !ok || now.Sub(time.Unix(lastActivity, 0)) > time.Duration(s.config.SessionMaxAge)*time.Second {
		_ = s.EndSession(w, r)
		return uuid.Nil, false
	}

	session.Values[sessionLastActivityKey] = now.Unix()
	_ = session.Save(r, w)
	return userID, true
}

// Authenticate resolves the caller: the session cookie is tried first, then
// an "Authorization: Bearer" token. The user row is loaded on every call so
// flag changes apply immediately.
func (s *AuthService) Authenticate(w http.ResponseWriter, r *http.Request) (*models.User, error) {
	userID, ok := s.sessionUserID(w, r)
	if !ok {
		authHeader := r.Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return nil, apperrors.ErrNotAuthenticated
		}
		claims, err := s.ValidateJWT(tokenString)
		if err != nil {
			return nil, apperrors.NewAuthenticationError("invalid token")
		}
		userID, err = uuid.Parse(claims.UserID)
		if err != nil {
			return nil, apperrors.NewAuthenticationError("invalid token subject")
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAuthenticationError("user no longer exists")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
