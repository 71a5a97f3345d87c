package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and user administration
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /api/register
// @Summary Register an account
// @Description Public self-registration. The new account has no access flags.
// @Tags authentication
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Account data"
// @Success 201 {object} models.User "Account created"
// @Failure 400 {object} ErrorResponse "Invalid request body or email already registered"
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			badRequest(c, err.Error())
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /api/admin/users
// @Summary List users
// @Description Paginated user list with optional name/username search and access-flag filter
// @Tags admin-users
// @Produce json
// @Param q query string false "Search on full name or username"
// @Param role query string false "Access flag filter" Enums(admin, manager, inspector, employee)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.UserListResponse
// @Failure 400 {object} ErrorResponse "Invalid role"
// @Security BearerAuth
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := pagination(c)

	users, err := h.userService.List(c.Query("q"), models.UserRole(c.Query("role")), page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/admin/users
// @Summary Create a user
// @Description Creates an account with access flags
// @Tags admin-users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /api/admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/admin/users/:id
// @Summary Get a user
// @Tags admin-users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/admin/users/:id
// @Summary Update a user
// @Description Partial update; the password is re-hashed when present
// @Tags admin-users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /api/admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/admin/users/:id
// @Summary Delete a user
// @Description Hard delete. Fails with 409 for the caller's own account or a user still referenced elsewhere.
// @Tags admin-users
// @Param id path string true "User ID (UUID)"
// @Success 204 "User deleted"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "User still referenced or is the caller"
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user")
	if !ok {
		return
	}
	callerID, _ := auth.GetUserID(c)

	if err := h.userService.Delete(id, callerID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListInspectors handles GET /api/users/inspectors
// @Summary List inspectors
// @Description Every user with the inspector flag, for assignment pickers
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /api/users/inspectors [get]
func (h *UserHandler) ListInspectors(c *gin.Context) {
	users, err := h.userService.ListInspectors()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListManagers handles GET /api/users/managers
// @Summary List managers
// @Description Every user with the manager flag, for request assignment
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /api/users/managers [get]
func (h *UserHandler) ListManagers(c *gin.Context) {
	users, err := h.userService.ListManagers()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
