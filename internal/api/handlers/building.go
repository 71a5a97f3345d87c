package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildingHandler handles the building directory
type BuildingHandler struct {
	buildingService service.BuildingServiceInterface
}

// NewBuildingHandler creates a new building handler
func NewBuildingHandler(buildingService service.BuildingServiceInterface) *BuildingHandler {
	return &BuildingHandler{buildingService: buildingService}
}

// ListBuildings handles GET /api/buildings
// @Summary List buildings
// @Tags buildings
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BuildingListResponse
// @Security BearerAuth
// @Router /api/buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	page, pageSize := pagination(c)

	buildings, err := h.buildingService.GetAll(page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// ListWithShifts handles GET /api/buildings/with-shifts
// @Summary Buildings with their schedule
// @Description Every building with its weekly assignments, groups, day bindings and inspector responses
// @Tags buildings
// @Produce json
// @Param week query string false "ISO week (YYYY-Www); all weeks when omitted"
// @Success 200 {array} service.BuildingWithShifts
// @Failure 400 {object} ErrorResponse "Invalid week"
// @Security BearerAuth
// @Router /api/buildings/with-shifts [get]
func (h *BuildingHandler) ListWithShifts(c *gin.Context) {
	buildings, err := h.buildingService.GetWithShifts(c.Query("week"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildings)
}

// GetBuilding handles GET /api/admin/buildings/:id
// @Summary Get a building
// @Tags buildings
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Success 200 {object} models.Building
// @Failure 400 {object} ErrorResponse "Invalid building ID"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Security BearerAuth
// @Router /api/admin/buildings/{id} [get]
func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	id, ok := uuidParam(c, "id", "building")
	if !ok {
		return
	}

	building, err := h.buildingService.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

// CreateBuilding handles POST /api/admin/buildings
// @Summary Create a building
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body service.BuildingRequest true "Building data"
// @Success 201 {object} models.Building
// @Failure 400 {object} ErrorResponse "Invalid request body or unknown supervisor, coordinator or shift type"
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Security BearerAuth
// @Router /api/admin/buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req service.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	building, err := h.buildingService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, building)
}

// UpdateBuilding handles PUT /api/admin/buildings/:id
// @Summary Update a building
// @Description Replaces the building fields; coordinators are replaced wholesale
// @Tags buildings
// @Accept json
// @Produce json
// @Param id path string true "Building ID (UUID)"
// @Param building body service.BuildingRequest true "Building data"
// @Success 200 {object} models.Building
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Failure 409 {object} ErrorResponse "Code already in use"
// @Security BearerAuth
// @Router /api/admin/buildings/{id} [put]
func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	id, ok := uuidParam(c, "id", "building")
	if !ok {
		return
	}

	var req service.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	building, err := h.buildingService.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

// DeleteBuilding handles DELETE /api/admin/buildings/:id
// @Summary Delete a building
// @Tags buildings
// @Param id path string true "Building ID (UUID)"
// @Success 204 "Building deleted"
// @Failure 404 {object} ErrorResponse "Building not found"
// @Failure 409 {object} ErrorResponse "Building still has weekly assignments"
// @Security BearerAuth
// @Router /api/admin/buildings/{id} [delete]
func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	id, ok := uuidParam(c, "id", "building")
	if !ok {
		return
	}

	if err := h.buildingService.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
