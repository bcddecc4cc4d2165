package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dillkhus/cafe-pos/internal/application/service"
	"github.com/dillkhus/cafe-pos/internal/presentation/http/dto/response"
)

// CustomerHandler exposes the customer ledger to staff
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns every customer's last recorded visit
// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	records, err := h.customerService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customers retrieved successfully", records)
}

// Get returns one customer's last visit by identity key
// GET /api/v1/customers/:identity
func (h *CustomerHandler) Get(c *gin.Context) {
	identity := c.Param("identity")
	if identity == "" {
		response.BadRequest(c, "Customer identity is required")
		return
	}

	record, err := h.customerService.Get(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", record)
}
