package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	receivingapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/receiving"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
)

// GoodsReceiptHandler handles goods receipt endpoints
type GoodsReceiptHandler struct {
	BaseHandler
	service *receivingapp.GoodsReceiptService
}

// NewGoodsReceiptHandler creates a new GoodsReceiptHandler
func NewGoodsReceiptHandler(service *receivingapp.GoodsReceiptService) *GoodsReceiptHandler {
	return &GoodsReceiptHandler{service: service}
}

// Receive handles POST /api/v1/goods-receipts
func (h *GoodsReceiptHandler) Receive(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req receivingapp.ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	receipt, err := h.service.ReceiveGoods(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receipt)
}

// Get handles GET /api/v1/goods-receipts/:id
func (h *GoodsReceiptHandler) Get(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	receiptID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	receipt, err := h.service.GetByID(c.Request.Context(), tenantID, receiptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// List handles GET /api/v1/goods-receipts
func (h *GoodsReceiptHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	base, ok := h.listFilter(c)
	if !ok {
		return
	}

	filter := receiving.ReceiptFilter{Filter: base}
	if v := c.Query("vendor_id"); v != "" {
		vendorID, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "vendor_id must be a valid UUID")
			return
		}
		filter.VendorID = &vendorID
	}
	if v := c.Query("purchase_order_id"); v != "" {
		orderID, err := uuid.Parse(v)
		if err != nil {
			h.BadRequest(c, "purchase_order_id must be a valid UUID")
			return
		}
		filter.PurchaseOrderID = &orderID
	}
	if v := c.Query("status"); v != "" {
		status := receiving.ReceiptStatus(v)
		filter.Status = &status
	}
	if v := c.Query("from_date"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.BadRequest(c, "from_date must be YYYY-MM-DD")
			return
		}
		filter.FromDate = &from
	}
	if v := c.Query("to_date"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.BadRequest(c, "to_date must be YYYY-MM-DD")
			return
		}
		filter.ToDate = &to
	}

	receipts, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipts)
}
