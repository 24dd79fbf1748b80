package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mhdalhzau/warungpos/internal/application/service"
	"github.com/mhdalhzau/warungpos/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Snapshot returns the store's at-a-glance dashboard. The day defaults to
// the store's current local day; an optional as_of query parameter (RFC3339)
// selects another instant. Unavailable sources come back as null fields, not
// errors.
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	storeID := GetStoreID(c)
	if storeID == nil {
		response.Unauthorized(c, "Store context required")
		return
	}

	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "as_of must be an RFC3339 timestamp")
			return
		}
		asOf = parsed
	}

	snapshot, err := h.dashboardService.GetSnapshot(c.Request.Context(), *storeID, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", snapshot)
}
