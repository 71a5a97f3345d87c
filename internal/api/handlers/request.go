package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles leave and shift-swap requests
type RequestHandler struct {
	requestService service.RequestServiceInterface
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService service.RequestServiceInterface) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := auth.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrNotAuthenticated.Error()})
	}
	return user, ok
}

// CreateRequest handles POST /api/requests
// @Summary File a request
// @Description LEAVE needs start_date and end_date (YYYY-MM-DD); SHIFT_SWAP needs shift_id
// @Tags requests
// @Accept json
// @Produce json
// @Param request body service.CreateRequestRequest true "Request data"
// @Success 201 {object} models.Request
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	requesterID, _ := auth.GetUserID(c)

	request, err := h.requestService.Create(requesterID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// ListRequests handles GET /api/requests
// @Summary List requests
// @Description own (default) lists the caller's requests, assigned lists those awaiting the caller's review, all is admin only
// @Tags requests
// @Produce json
// @Param scope query string false "Scope" Enums(own, assigned, all)
// @Param status query string false "Status filter" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RequestListResponse
// @Failure 400 {object} ErrorResponse "Invalid scope or status"
// @Failure 403 {object} ErrorResponse "Scope not allowed for the caller"
// @Security BearerAuth
// @Router /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	requests, err := h.requestService.List(caller, c.Query("scope"), models.RequestStatus(c.Query("status")), page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetRequest handles GET /api/requests/:id
// @Summary Get a request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Success 200 {object} models.Request
// @Failure 403 {object} ErrorResponse "Not the requester, assigned manager or an admin"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Security BearerAuth
// @Router /api/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "request")
	if !ok {
		return
	}

	request, err := h.requestService.Get(caller, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// ResolveRequest handles PUT /api/admin/requests/:id
// @Summary Approve or reject a request
// @Description Only an admin or the assigned manager may resolve, and only while the request is PENDING
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param decision body service.ResolveRequestRequest true "Decision"
// @Success 200 {object} models.Request
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Caller may not resolve this request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /api/admin/requests/{id} [put]
func (h *RequestHandler) ResolveRequest(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "request")
	if !ok {
		return
	}

	var req service.ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	request, err := h.requestService.Resolve(c, caller, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// AssignManager handles POST /api/admin/requests/:id/assign
// @Summary Assign a reviewing manager
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID (UUID)"
// @Param assignment body service.AssignManagerRequest true "Manager"
// @Success 200 {object} models.Request
// @Failure 400 {object} ErrorResponse "Target user is not a manager"
// @Failure 404 {object} ErrorResponse "Request or user not found"
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /api/admin/requests/{id}/assign [post]
func (h *RequestHandler) AssignManager(c *gin.Context) {
	id, ok := uuidParam(c, "id", "request")
	if !ok {
		return
	}

	var req service.AssignManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	request, err := h.requestService.AssignManager(c, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
