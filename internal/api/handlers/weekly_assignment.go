package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WeeklyAssignmentHandler handles the weekly shift assignment aggregate
type WeeklyAssignmentHandler struct {
	assignmentService service.WeeklyAssignmentServiceInterface
}

// NewWeeklyAssignmentHandler creates a new weekly assignment handler
func NewWeeklyAssignmentHandler(assignmentService service.WeeklyAssignmentServiceInterface) *WeeklyAssignmentHandler {
	return &WeeklyAssignmentHandler{assignmentService: assignmentService}
}

// CreateWeeklyAssignment handles POST /api/admin/weekly-assignments
// @Summary Create a weekly assignment
// @Description Creates the assignment with all its groups, inspectors and day bindings in one transaction, then notifies and emails every inspector
// @Tags weekly-assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateWeeklyAssignmentRequest true "Assignment with groups"
// @Success 201 {object} models.WeeklyShiftAssignment
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown referenced id"
// @Failure 409 {object} ErrorResponse "Assignment already exists for the building and week"
// @Security BearerAuth
// @Router /api/admin/weekly-assignments [post]
func (h *WeeklyAssignmentHandler) CreateWeeklyAssignment(c *gin.Context) {
	var req service.CreateWeeklyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	createdBy, _ := auth.GetUserID(c)

	assignment, err := h.assignmentService.Create(c, &req, createdBy)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ListWeeklyAssignments handles GET /api/admin/weekly-assignments
// @Summary List weekly assignments
// @Tags weekly-assignments
// @Produce json
// @Param building_id query string false "Building ID (UUID)"
// @Param week query string false "ISO week (YYYY-Www)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WeeklyAssignmentListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /api/admin/weekly-assignments [get]
func (h *WeeklyAssignmentHandler) ListWeeklyAssignments(c *gin.Context) {
	buildingID, ok := optionalUUIDQuery(c, "building_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	assignments, err := h.assignmentService.List(buildingID, c.Query("week"), page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GetWeeklyAssignment handles GET /api/admin/weekly-assignments/:id
// @Summary Get a weekly assignment
// @Description Returns the full aggregate with groups, roles, inspectors and day bindings
// @Tags weekly-assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} models.WeeklyShiftAssignment
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /api/admin/weekly-assignments/{id} [get]
func (h *WeeklyAssignmentHandler) GetWeeklyAssignment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "weekly assignment")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// UpdateWeeklyAssignment handles PUT /api/admin/weekly-assignments/:id
// @Summary Update a weekly assignment
// @Description Groups with an id have their children replaced; groups without one are added; omitted groups are kept
// @Tags weekly-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateWeeklyAssignmentRequest true "Changes"
// @Success 200 {object} models.WeeklyShiftAssignment
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assignment or group not found"
// @Security BearerAuth
// @Router /api/admin/weekly-assignments/{id} [put]
func (h *WeeklyAssignmentHandler) UpdateWeeklyAssignment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "weekly assignment")
	if !ok {
		return
	}

	var req service.UpdateWeeklyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	assignment, err := h.assignmentService.Update(c, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// DeleteWeeklyAssignment handles DELETE /api/admin/weekly-assignments/:id
// @Summary Delete a weekly assignment
// @Description Removes the assignment with all its groups, inspector bindings and day bindings
// @Tags weekly-assignments
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Assignment deleted"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /api/admin/weekly-assignments/{id} [delete]
func (h *WeeklyAssignmentHandler) DeleteWeeklyAssignment(c *gin.Context) {
	id, ok := uuidParam(c, "id", "weekly assignment")
	if !ok {
		return
	}

	if err := h.assignmentService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
