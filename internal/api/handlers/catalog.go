package handlers

import (
	"net/http"

	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves one name/description lookup table (roles, agencies, task types)
type CatalogHandler[T any] struct {
	service service.CatalogServiceInterface[T]
	label   string
}

// NewCatalogHandler creates a catalog handler. label names the entity in error messages.
func NewCatalogHandler[T any](s service.CatalogServiceInterface[T], label string) *CatalogHandler[T] {
	return &CatalogHandler[T]{service: s, label: label}
}

// List handles GET on the catalog collection
// @Summary List catalog entries
// @Description Returns every entry ordered by name
// @Tags catalogs
// @Produce json
// @Success 200 {array} models.CatalogEntry
// @Security BearerAuth
// @Router /api/roles [get]
// @Router /api/agencies [get]
// @Router /api/task-types [get]
func (h *CatalogHandler[T]) List(c *gin.Context) {
	entries, err := h.service.GetAll()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get handles GET on one catalog entry
// @Summary Get a catalog entry
// @Tags catalogs
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} models.CatalogEntry
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /api/admin/roles/{id} [get]
// @Router /api/admin/agencies/{id} [get]
// @Router /api/admin/task-types/{id} [get]
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", h.label)
	if !ok {
		return
	}

	entry, err := h.service.GetByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create handles POST on the admin catalog collection
// @Summary Create a catalog entry
// @Tags catalogs
// @Accept json
// @Produce json
// @Param entry body service.CatalogRequest true "Entry data"
// @Success 201 {object} models.CatalogEntry
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /api/admin/roles [post]
// @Router /api/admin/agencies [post]
// @Router /api/admin/task-types [post]
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.service.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update handles PUT on one catalog entry
// @Summary Update a catalog entry
// @Tags catalogs
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.CatalogRequest true "Entry data"
// @Success 200 {object} models.CatalogEntry
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /api/admin/roles/{id} [put]
// @Router /api/admin/agencies/{id} [put]
// @Router /api/admin/task-types/{id} [put]
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id", h.label)
	if !ok {
		return
	}

	var req service.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.service.Update(id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE on one catalog entry
// @Summary Delete a catalog entry
// @Tags catalogs
// @Param id path string true "Entry ID (UUID)"
// @Success 204 "Entry deleted"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Entry still in use"
// @Security BearerAuth
// @Router /api/admin/roles/{id} [delete]
// @Router /api/admin/agencies/{id} [delete]
// @Router /api/admin/task-types/{id} [delete]
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id", h.label)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
