package auth

import (
	"net/http"

	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextUserKey   = "user"
	contextUserIDKey = "user_id"
)

// AuthMiddleware guards routes with the session cookie or a bearer token
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects unauthenticated requests with 401 and stores the user in the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.service.Authenticate(c.Writer, c.Request)
		if err != nil {
			if !apperrors.IsAuthentication(err) {
				logger.WithContext(c).WithError(err).Error("authentication lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// RequireAdmin rejects authenticated non-admins with 403. It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireAnyRole(models.UserRoleAdmin)
}

// RequireAnyRole rejects callers holding none of the given flags with 403.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireAnyRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}
		if !user.HasAnyRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotAuthorized.Error()})
			return
		}
		c.Next()
	}
}

// SetUser stores the authenticated user in the gin context
func SetUser(c *gin.Context, user *models.User) {
	c.Set(contextUserKey, user)
	c.Set(contextUserIDKey, user.ID)
	c.Set(logger.UsernameKey, user.Username)
}

// GetUser is a helper function to extract the authenticated user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
