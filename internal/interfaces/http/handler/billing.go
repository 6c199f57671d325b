package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/billing"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
)

// BillHandler handles vendor bill endpoints
type BillHandler struct {
	BaseHandler
	service *billingapp.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(service *billingapp.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// Get handles GET /api/v1/bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	billID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.service.GetByID(c.Request.Context(), tenantID, billID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// List handles GET /api/v1/bills
func (h *BillHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	base, ok := h.listFilter(c)
	if !ok {
		return
	}

	filter := billing.BillFilter{Filter: base}
	if v := c.Query("vendor_id"); v != "" {
		vendorID, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "vendor_id must be a valid UUID")
			return
		}
		filter.VendorID = &vendorID
	}
	if v := c.Query("status"); v != "" {
		status := billing.BillStatus(v)
		filter.Status = &status
	}

	bills, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, bills, total, filter.Page, filter.PageSize)
}

// ApplyPayment handles POST /api/v1/bills/:id/payments
func (h *BillHandler) ApplyPayment(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	billID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req billingapp.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	bill, err := h.service.ApplyPayment(c.Request.Context(), tenantID, billID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}

// Cancel handles POST /api/v1/bills/:id/cancel
func (h *BillHandler) Cancel(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	billID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req billingapp.CancelBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	bill, err := h.service.Cancel(c.Request.Context(), tenantID, billID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bill)
}
