package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/request"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/response"
	"github.com/dillkhus/cafe-pos/pkg/billpdf"
)

// SessionHandler drives the customer ordering flow over HTTP
type SessionHandler struct {
	sessionService *service.SessionService
	printerService *service.PrinterService
	cafe           config.CafeConfig
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService, printerService *service.PrinterService, cafe config.CafeConfig) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		printerService: printerService,
		cafe:           cafe,
	}
}

// parseSessionID extracts and validates the :id path parameter
func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create opens a new ordering session
// POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.sessionService.Open(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Session opened", session)
}

// Get returns the current state of a session
// GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Session retrieved successfully", session)
}

// SubmitIdentity records the customer's name and phone
// PUT /api/v1/sessions/:id/identity
func (h *SessionHandler) SubmitIdentity(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req request.IdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and phone are required")
		return
	}

	session, greeting, err := h.sessionService.SubmitIdentity(c.Request.Context(), id, req.Name, req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, greeting.Message, gin.H{
		"session":  session,
		"greeting": greeting,
	})
}

// SetItem sets an item's quantity in the session cart
// PUT /api/v1/sessions/:id/items
func (h *SessionHandler) SetItem(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	var req request.SetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Item name is required and quantity must not be negative")
		return
	}

	session, err := h.sessionService.SetItem(c.Request.Context(), id, req.Item, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", session)
}

// ClearCart empties the session cart
// DELETE /api/v1/sessions/:id/items
func (h *SessionHandler) ClearCart(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.ClearCart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart cleared", session)
}

// Checkout finalizes the order, computes the bill, and records the visit
// POST /api/v1/sessions/:id/checkout
func (h *SessionHandler) Checkout(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	result, err := h.sessionService.Checkout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Order placed successfully"
	if !result.Saved {
		message = "Order placed, but the visit could not be recorded"
	}
	response.OK(c, message, result)
}

// GetBill returns the finalized bill of a session
// GET /api/v1/sessions/:id/bill
func (h *SessionHandler) GetBill(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	bill, err := h.sessionService.Bill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// ExportPDF renders the finalized bill as a downloadable PDF
// GET /api/v1/sessions/:id/bill/pdf
func (h *SessionHandler) ExportPDF(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	bill, err := h.sessionService.Bill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := billpdf.Render(bill, billpdf.Header{
		CafeName: h.cafe.Name,
		Address:  h.cafe.Address,
		Phone:    h.cafe.Phone,
	})
	if err != nil {
		response.ErrorWithCode(c, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", bill.BillNo))
	c.Data(http.StatusOK, "application/pdf", data)
}

// PrintReceipt prints the finalized bill on the counter printer
// POST /api/v1/sessions/:id/bill/print
func (h *SessionHandler) PrintReceipt(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	bill, err := h.printerService.PrintBillReceipt(c.Request.Context(), id)
	if err != nil {
		if bill != nil {
			// The bill exists but the printer refused; report the failure
			// with the bill attached so staff can retry or hand-write it.
			response.ErrorWithCode(c, http.StatusBadGateway, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", bill)
}
