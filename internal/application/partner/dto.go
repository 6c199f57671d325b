package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/partner"
)

// ==================== Vendor DTOs ====================

// CreateVendorRequest represents a request to create a vendor
type CreateVendorRequest struct {
	Code            string `json:"code" binding:"required,min=1,max=50"`
	Name            string `json:"name" binding:"required,min=1,max=200"`
	Currency        string `json:"currency" binding:"required,currencycode"`
	PaymentTermDays int    `json:"payment_term_days" binding:"min=0"`
	ContactName     string `json:"contact_name" binding:"max=100"`
	Email           string `json:"email" binding:"omitempty,email,max=200"`
	Phone           string `json:"phone" binding:"max=50"`
	TaxID           string `json:"tax_id" binding:"max=50"`
}

// UpdateVendorRequest represents a request to update vendor master data
type UpdateVendorRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=200"`
	PaymentTermDays int    `json:"payment_term_days" binding:"min=0"`
	ContactName     string `json:"contact_name" binding:"max=100"`
	Email           string `json:"email" binding:"omitempty,email,max=200"`
	Phone           string `json:"phone" binding:"max=50"`
	TaxID           string `json:"tax_id" binding:"max=50"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	Currency        string    `json:"currency"`
	PaymentTermDays int       `json:"payment_term_days"`
	ContactName     string    `json:"contact_name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	TaxID           string    `json:"tax_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToVendorResponse maps a domain vendor to its response shape
func ToVendorResponse(v *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:              v.ID,
		Code:            v.Code,
		Name:            v.Name,
		Status:          string(v.Status),
		Currency:        v.Currency.String(),
		PaymentTermDays: v.PaymentTermDays,
		ContactName:     v.ContactName,
		Email:           v.Email,
		Phone:           v.Phone,
		TaxID:           v.TaxID,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	SKU                string     `json:"sku" binding:"required,min=1,max=50"`
	Name               string     `json:"name" binding:"required,min=1,max=200"`
	InventoryAccountID *uuid.UUID `json:"inventory_account_id"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                 uuid.UUID        `json:"id"`
	SKU                string           `json:"sku"`
	Name               string           `json:"name"`
	InventoryAccountID *uuid.UUID       `json:"inventory_account_id,omitempty"`
	LastPurchasePrice  *decimal.Decimal `json:"last_purchase_price,omitempty"`
	IsActive           bool             `json:"is_active"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ToProductResponse maps a domain product to its response shape
func ToProductResponse(p *partner.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		SKU:                p.SKU,
		Name:               p.Name,
		InventoryAccountID: p.InventoryAccountID,
		LastPurchasePrice:  p.LastPurchasePrice,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ==================== Purchase order DTOs ====================

// OrderLineInput represents one requested purchase order line
type OrderLineInput struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	Description string          `json:"description" binding:"max=200"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	OrderNumber string           `json:"order_number" binding:"required,min=1,max=50"`
	VendorID    uuid.UUID        `json:"vendor_id" binding:"required"`
	Currency    string           `json:"currency" binding:"required,currencycode"`
	OrderDate   time.Time        `json:"order_date" binding:"required"`
	Confirm     bool             `json:"confirm"`
	Lines       []OrderLineInput `json:"lines" binding:"required,min=1,dive"`
}

// OrderLineResponse represents one purchase order line
type OrderLineResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	Description      string          `json:"description,omitempty"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Amount           decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	VendorID    uuid.UUID           `json:"vendor_id"`
	Currency    string              `json:"currency"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Lines       []OrderLineResponse `json:"lines"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToPurchaseOrderResponse maps a domain order to its response shape
func ToPurchaseOrderResponse(o *partner.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ID:               l.ID,
			ProductID:        l.ProductID,
			Description:      l.Description,
			OrderedQuantity:  l.OrderedQuantity,
			ReceivedQuantity: l.ReceivedQuantity,
			UnitPrice:        l.UnitPrice,
			Amount:           l.Amount,
		})
	}

	return PurchaseOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		VendorID:    o.VendorID,
		Currency:    o.Currency.String(),
		OrderDate:   o.OrderDate,
		Status:      o.Status.String(),
		TotalAmount: o.TotalAmount,
		Lines:       lines,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
