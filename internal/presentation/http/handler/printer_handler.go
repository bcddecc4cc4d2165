package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/response"
)

// PrinterHandler exposes counter-printer operations to staff
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status reports printer configuration and connectivity
// GET /api/v1/printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// Test sends a short test receipt to the printer
// POST /api/v1/printer/test
func (h *PrinterHandler) Test(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.ErrorWithCode(c, http.StatusBadGateway, err.Error())
		return
	}
	response.OK(c, "Test receipt printed", nil)
}
