package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/partner"
)

// VendorHandler handles vendor master data endpoints
type VendorHandler struct {
	BaseHandler
	service *partnerapp.VendorService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(service *partnerapp.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

// Create handles POST /api/v1/vendors
func (h *VendorHandler) Create(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req partnerapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	vendor, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, vendor)
}

// Update handles PUT /api/v1/vendors/:id
func (h *VendorHandler) Update(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	vendorID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req partnerapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	vendor, err := h.service.Update(c.Request.Context(), tenantID, vendorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// Deactivate handles POST /api/v1/vendors/:id/deactivate
func (h *VendorHandler) Deactivate(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	vendorID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), tenantID, vendorID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"deactivated": true})
}

// Activate handles POST /api/v1/vendors/:id/activate
func (h *VendorHandler) Activate(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	vendorID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Activate(c.Request.Context(), tenantID, vendorID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"activated": true})
}

// Get handles GET /api/v1/vendors/:id
func (h *VendorHandler) Get(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	vendorID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.service.GetByID(c.Request.Context(), tenantID, vendorID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendor)
}

// List handles GET /api/v1/vendors
func (h *VendorHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	vendors, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// ProductHandler handles product master data endpoints
type ProductHandler struct {
	BaseHandler
	service *partnerapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *partnerapp.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req partnerapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get handles GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	productID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), tenantID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	products, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	service *partnerapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(service *partnerapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

// Create handles POST /api/v1/purchase-orders
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req partnerapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Confirm handles POST /api/v1/purchase-orders/:id/confirm
func (h *PurchaseOrderHandler) Confirm(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	orderID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.service.Confirm(c.Request.Context(), tenantID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Cancel handles POST /api/v1/purchase-orders/:id/cancel
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	orderID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason" binding:"required,min=1,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	order, err := h.service.Cancel(c.Request.Context(), tenantID, orderID, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Get handles GET /api/v1/purchase-orders/:id
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	orderID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), tenantID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// List handles GET /api/v1/purchase-orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	orders, total, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}
