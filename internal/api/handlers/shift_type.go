package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftTypeHandler handles the shift type catalog
type ShiftTypeHandler struct {
	shiftTypeService service.ShiftTypeServiceInterface
}

// NewShiftTypeHandler creates a new shift type handler
func NewShiftTypeHandler(shiftTypeService service.ShiftTypeServiceInterface) *ShiftTypeHandler {
	return &ShiftTypeHandler{shiftTypeService: shiftTypeService}
}

// ListShiftTypes handles GET /api/shift-types
// @Summary List shift types
// @Tags shift-types
// @Produce json
// @Success 200 {array} models.ShiftType
// @Security BearerAuth
// @Router /api/shift-types [get]
func (h *ShiftTypeHandler) ListShiftTypes(c *gin.Context) {
	shiftTypes, err := h.shiftTypeService.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shiftTypes)
}

// GetShiftType handles GET /api/admin/shift-types/:id
// @Summary Get a shift type
// @Tags shift-types
// @Produce json
// @Param id path string true "Shift type ID (UUID)"
// @Success 200 {object} models.ShiftType
// @Failure 404 {object} ErrorResponse "Shift type not found"
// @Security BearerAuth
// @Router /api/admin/shift-types/{id} [get]
func (h *ShiftTypeHandler) GetShiftType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift type")
	if !ok {
		return
	}

	shiftType, err := h.shiftTypeService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shiftType)
}

// CreateShiftType handles POST /api/admin/shift-types
// @Summary Create a shift type
// @Description Times are HH:MM; an end before the start is an overnight shift
// @Tags shift-types
// @Accept json
// @Produce json
// @Param shiftType body service.ShiftTypeRequest true "Shift type data"
// @Success 201 {object} models.ShiftType
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /api/admin/shift-types [post]
func (h *ShiftTypeHandler) CreateShiftType(c *gin.Context) {
	var req service.ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	shiftType, err := h.shiftTypeService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shiftType)
}

// UpdateShiftType handles PUT /api/admin/shift-types/:id
// @Summary Update a shift type
// @Tags shift-types
// @Accept json
// @Produce json
// @Param id path string true "Shift type ID (UUID)"
// @Param shiftType body service.ShiftTypeRequest true "Shift type data"
// @Success 200 {object} models.ShiftType
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Shift type not found"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /api/admin/shift-types/{id} [put]
func (h *ShiftTypeHandler) UpdateShiftType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift type")
	if !ok {
		return
	}

	var req service.ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	shiftType, err := h.shiftTypeService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, shiftType)
}

// DeleteShiftType handles DELETE /api/admin/shift-types/:id
// @Summary Delete a shift type
// @Tags shift-types
// @Param id path string true "Shift type ID (UUID)"
// @Success 204 "Shift type deleted"
// @Failure 404 {object} ErrorResponse "Shift type not found"
// @Failure 409 {object} ErrorResponse "Shift type still in use"
// @Security BearerAuth
// @Router /api/admin/shift-types/{id} [delete]
func (h *ShiftTypeHandler) DeleteShiftType(c *gin.Context) {
	id, ok := uuidParam(c, "id", "shift type")
	if !ok {
		return
	}

	if err := h.shiftTypeService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
