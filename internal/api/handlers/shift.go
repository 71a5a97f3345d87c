package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/auth"
	"inspection-scheduler-backend/internal/database/models"
	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles inspector shifts and the admin single-group view
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// RespondResponse is returned after an inspector answers a shift
type RespondResponse struct {
	ShiftID string                  `json:"shift_id"`
	Status  models.AssignmentStatus `json:"status" example:"ACCEPTED"`
}

// MyShifts handles GET /api/shifts
// @Summary My shifts
// @Description Shifts the caller is bound to, with building, week, role, days and the caller's own response
// @Tags shifts
// @Produce json
// @Success 200 {array} service.InspectorShift
// @Security BearerAuth
// @Router /api/shifts [get]
func (h *ShiftHandler) MyShifts(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	shifts, err := h.shiftService.ListForInspector(userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// Respond handles POST /api/shifts/:id/respond
// @Summary Accept or reject a shift
// @Description REJECT requires a non-blank rejection_reason. The caller must be bound to the shift.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param response body service.RespondRequest true "Response"
// @Success 200 {object} RespondResponse
// @Failure 400 {object} ErrorResponse "Invalid action or missing rejection reason"
// @Failure 404 {object} ErrorResponse "Caller is not an inspector of the shift"
// @Security BearerAuth
// @Router /api/shifts/{id}/respond [post]
func (h *ShiftHandler) Respond(c *gin.Context) {
	shiftID, ok := uuidParam(c, "id", "shift")
	if !ok {
		return
	}

	var req service.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	inspectorID, _ := auth.GetUserID(c)

	status, err := h.shiftService.Respond(c, shiftID, inspectorID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, RespondResponse{ShiftID: shiftID.String(), Status: status})
}

// ListShifts handles GET /api/admin/shifts
// @Summary List shifts
// @Tags admin-shifts
// @Produce json
// @Param building_id query string false "Building ID (UUID)"
// @Param week query string false "ISO week (YYYY-Www)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShiftListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /api/admin/shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	buildingID, ok := optionalUUIDQuery(c, "building_id")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	shifts, err := h.shiftService.List(buildingID, c.Query("week"), page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /api/admin/shifts/:id
// @Summary Get a shift
// @Tags admin-shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} models.InspectorGroup
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/admin/shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift")
	if !ok {
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// CreateShift handles POST /api/admin/shifts
// @Summary Create a shift
// @Description Adds one group to weekly_assignment_id, or to the assignment for building_id and week (created when missing)
// @Tags admin-shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} models.InspectorGroup
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Weekly assignment not found"
// @Security BearerAuth
// @Router /api/admin/shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	createdBy, _ := auth.GetUserID(c)

	shift, err := h.shiftService.Create(c, &req, createdBy)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// ReplaceShift handles PUT /api/admin/shifts/:id
// @Summary Replace a shift
// @Description Replaces the role, inspectors and days of one group. Every response resets to PENDING.
// @Tags admin-shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.ReplaceShiftRequest true "Shift data"
// @Success 200 {object} models.InspectorGroup
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/admin/shifts/{id} [put]
func (h *ShiftHandler) ReplaceShift(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift")
	if !ok {
		return
	}

	var req service.ReplaceShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.Replace(c, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /api/admin/shifts/:id
// @Summary Delete a shift
// @Tags admin-shifts
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Shift deleted"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /api/admin/shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
