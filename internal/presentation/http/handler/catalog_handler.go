package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/response"
)

// CatalogHandler serves the cafe status and menu endpoints
type CatalogHandler struct {
	catalogService *service.CatalogService
	schedule       *service.ScheduleService
	cafeName       string
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService, schedule *service.ScheduleService, cafeName string) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		schedule:       schedule,
		cafeName:       cafeName,
	}
}

// Status reports whether the cafe is open and which window is active
// GET /api/v1/status
func (h *CatalogHandler) Status(c *gin.Context) {
	window := h.schedule.CurrentWindow()
	response.OK(c, "Cafe status", gin.H{
		"cafe":   h.cafeName,
		"open":   window.Open(),
		"window": window,
		"time":   h.schedule.Now().Format("15:04:05"),
		"hours":  h.schedule.ConfiguredHours(),
	})
}

// Menu returns the menu for the active window, or an explicitly
// requested one via ?window=day|evening for browsing
// GET /api/v1/menu
func (h *CatalogHandler) Menu(c *gin.Context) {
	var (
		catalog interface{}
		err     error
	)

	if raw := c.Query("window"); raw != "" {
		var window enum.ServiceWindow
		switch strings.ToLower(raw) {
		case "day":
			window = enum.WindowDay
		case "evening":
			window = enum.WindowEvening
		default:
			response.BadRequest(c, "Unknown menu window: "+raw)
			return
		}
		catalog, err = h.catalogService.MenuFor(c.Request.Context(), window)
	} else {
		catalog, err = h.catalogService.ActiveMenu(c.Request.Context())
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", catalog)
}
