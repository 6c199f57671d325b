package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	currencyapp "github.com/Mudegi/YourBookSuit-sub006/internal/application/currency"
)

// RateHandler handles exchange rate endpoints
type RateHandler struct {
	BaseHandler
	service *currencyapp.RateService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(service *currencyapp.RateService) *RateHandler {
	return &RateHandler{service: service}
}

// SaveRate handles PUT /api/v1/rates
func (h *RateHandler) SaveRate(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req currencyapp.SaveRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	rate, err := h.service.SaveRate(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// Lookup handles GET /api/v1/rates/lookup
func (h *RateHandler) Lookup(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req currencyapp.LookupRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid lookup parameters: "+err.Error())
		return
	}

	result, err := h.service.Lookup(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Convert handles GET /api/v1/rates/convert
func (h *RateHandler) Convert(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req currencyapp.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid convert parameters: "+err.Error())
		return
	}

	result, err := h.service.Convert(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// FetchRequest triggers a provider fetch for one pair and date
type FetchRequest struct {
	FromCurrency string    `json:"from_currency" binding:"required,currencycode"`
	ToCurrency   string    `json:"to_currency" binding:"required,currencycode"`
	Date         time.Time `json:"date" binding:"required"`
}

// Fetch handles POST /api/v1/rates/fetch
func (h *RateHandler) Fetch(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}

	var req FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	rate, err := h.service.FetchAndSave(c.Request.Context(), tenantID, req.FromCurrency, req.ToCurrency, req.Date)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rate)
}

// List handles GET /api/v1/rates
func (h *RateHandler) List(c *gin.Context) {
	tenantID, ok := h.mustTenant(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	rates, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rates)
}
