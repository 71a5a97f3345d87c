package handlers

import (
	"net/http"
	"strings"

	"inspection-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles corporate directory lookups
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// Search searches the directory by common-name prefix
// @Summary Search the corporate directory
// @Description Searches LDAP for people whose cn starts with the given prefix, used to prefill the user form
// @Tags admin-users
// @Produce json
// @Param q query string true "Common name prefix"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing query parameter"
// @Failure 502 {object} ErrorResponse "Directory connection or search failed"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /api/admin/directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "missing query parameter: q")
		return
	}

	users, err := h.service.SearchByCN(q)
	if err != nil {
		if statusFor(err) == http.StatusServiceUnavailable {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "directory search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}
