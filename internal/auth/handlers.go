package auth

import (
	"net/http"

	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and the current-user endpoint
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/login
// @Summary Log in
// @Description Verifies the credentials, starts a session cookie and returns a bearer token for non-browser clients
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.service.StartSession(c.Writer, c.Request, resp.User.ID); err != nil {
		logger.WithContext(c).WithError(err).Error("failed to start session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Expires the session cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.EndSession(c.Writer, c.Request); err != nil {
		logger.WithContext(c).WithError(err).Warn("failed to clear session")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /api/me
// @Summary Current user
// @Description Returns the authenticated user
// @Tags authentication
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
