package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/inventory"
)

// InventoryHandler handles stock valuation endpoints
type InventoryHandler struct {
	BaseHandler
	service *inventoryapp.ValuationService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(service *inventoryapp.ValuationService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Receive handles POST /api/v1/inventory/receipts
func (h *InventoryHandler) Receive(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req inventoryapp.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	position, err := h.service.Receive(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, position)
}

// Issue handles POST /api/v1/inventory/issues
func (h *InventoryHandler) Issue(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req inventoryapp.IssueStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	position, err := h.service.Issue(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, position)
}

// GetPosition handles GET /api/v1/inventory/positions
func (h *InventoryHandler) GetPosition(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Query("product_id"))
	if err != nil {
		h.BadRequest(c, "product_id must be a valid UUID")
		return
	}
	locationID, err := uuid.Parse(c.Query("location_id"))
	if err != nil {
		h.BadRequest(c, "location_id must be a valid UUID")
		return
	}

	position, err := h.service.GetPosition(c.Request.Context(), tenantID, productID, locationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, position)
}

// ListMovements handles GET /api/v1/inventory/positions/:id/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	positionID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	movements, err := h.service.ListMovements(c.Request.Context(), tenantID, positionID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}
