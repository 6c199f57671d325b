package receiving

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/receiving"
)

// ==================== Goods Receipt DTOs ====================

// ReceiptLineInput represents one received line in the request
type ReceiptLineInput struct {
	ProductID           uuid.UUID        `json:"product_id" binding:"required"`
	ProductName         string           `json:"product_name" binding:"required,min=1,max=200"`
	Quantity            decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice           decimal.Decimal  `json:"unit_price" binding:"required"`
	TaxRate             decimal.Decimal  `json:"tax_rate"`
	Weight              *decimal.Decimal `json:"weight"`
	Volume              *decimal.Decimal `json:"volume"`
	PurchaseOrderLineID *uuid.UUID       `json:"purchase_order_line_id"`
}

// LandedCostsInput represents the indirect cost components to allocate
type LandedCostsInput struct {
	Freight          decimal.Decimal `json:"freight"`
	Insurance        decimal.Decimal `json:"insurance"`
	CustomsDuty      decimal.Decimal `json:"customs_duty"`
	Other            decimal.Decimal `json:"other"`
	AllocationMethod string          `json:"allocation_method" binding:"required,oneof=BY_VALUE BY_QUANTITY BY_WEIGHT BY_VOLUME"`
}

// PostingAccounts identifies the ledger accounts the receipt posts against
type PostingAccounts struct {
	InventoryAccountID  uuid.UUID  `json:"inventory_account_id" binding:"required"`
	PayableAccountID    uuid.UUID  `json:"payable_account_id" binding:"required"`
	TaxAccountID        *uuid.UUID `json:"tax_account_id"`
	LandedCostAccountID *uuid.UUID `json:"landed_cost_account_id"`
}

// ReceiveGoodsRequest represents a full goods receipt: the delivery lines,
// optional landed costs, and the documents to generate. Ledger posting is
// requested by supplying Accounts; the vendor bill by CreateBill. A receipt
// with neither stays at RECEIVED.
type ReceiveGoodsRequest struct {
	ReceiptNumber   string             `json:"receipt_number" binding:"required,min=1,max=50"`
	VendorID        uuid.UUID          `json:"vendor_id" binding:"required"`
	LocationID      uuid.UUID          `json:"location_id" binding:"required"`
	ReceiptDate     time.Time          `json:"receipt_date" binding:"required"`
	Currency        string             `json:"currency" binding:"required,currencycode"`
	ExchangeRate    *decimal.Decimal   `json:"exchange_rate"`
	PurchaseOrderID *uuid.UUID         `json:"purchase_order_id"`
	Lines           []ReceiptLineInput `json:"lines" binding:"required,min=1,dive"`
	LandedCosts     *LandedCostsInput  `json:"landed_costs"`
	Accounts        *PostingAccounts   `json:"accounts"`
	CreateBill      bool               `json:"create_bill"`
	BillNumber      string             `json:"bill_number" binding:"max=50"`
	TransactionNumber string           `json:"transaction_number" binding:"max=50"`
	Remark          string             `json:"remark" binding:"max=500"`
	CreatedBy       *uuid.UUID         `json:"-"`
}

// ReceiptLineResponse represents one line of a posted receipt
type ReceiptLineResponse struct {
	ID               uuid.UUID        `json:"id"`
	ProductID        uuid.UUID        `json:"product_id"`
	ProductName      string           `json:"product_name"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unit_price"`
	LineSubtotal     decimal.Decimal  `json:"line_subtotal"`
	LineTax          decimal.Decimal  `json:"line_tax"`
	LineTotal        decimal.Decimal  `json:"line_total"`
	OriginalUnitCost decimal.Decimal  `json:"original_unit_cost"`
	LandedUnitCost   *decimal.Decimal `json:"landed_unit_cost,omitempty"`
}

// GoodsReceiptResponse represents the outcome of a goods receipt
type GoodsReceiptResponse struct {
	ID                  uuid.UUID             `json:"id"`
	ReceiptNumber       string                `json:"receipt_number"`
	VendorID            uuid.UUID             `json:"vendor_id"`
	LocationID          uuid.UUID             `json:"location_id"`
	ReceiptDate         time.Time             `json:"receipt_date"`
	Currency            string                `json:"currency"`
	ExchangeRate        *decimal.Decimal      `json:"exchange_rate,omitempty"`
	Subtotal            decimal.Decimal       `json:"subtotal"`
	TaxTotal            decimal.Decimal       `json:"tax_total"`
	Total               decimal.Decimal       `json:"total"`
	Status              string                `json:"status"`
	Lines               []ReceiptLineResponse `json:"lines"`
	PurchaseOrderID     *uuid.UUID            `json:"purchase_order_id,omitempty"`
	BillID              *uuid.UUID            `json:"bill_id,omitempty"`
	LedgerTransactionID *uuid.UUID            `json:"ledger_transaction_id,omitempty"`
	Warnings            []string              `json:"warnings,omitempty"`
}

// ToGoodsReceiptResponse maps a receipt to its response shape
func ToGoodsReceiptResponse(receipt *receiving.GoodsReceipt, warnings []string) GoodsReceiptResponse {
	lines := make([]ReceiptLineResponse, 0, len(receipt.Lines))
	for _, l := range receipt.Lines {
		lines = append(lines, ReceiptLineResponse{
			ID:               l.ID,
			ProductID:        l.ProductID,
			ProductName:      l.ProductName,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			LineSubtotal:     l.LineSubtotal,
			LineTax:          l.LineTax,
			LineTotal:        l.LineTotal,
			OriginalUnitCost: l.OriginalUnitCost,
			LandedUnitCost:   l.LandedUnitCost,
		})
	}

	return GoodsReceiptResponse{
		ID:                  receipt.ID,
		ReceiptNumber:       receipt.ReceiptNumber,
		VendorID:            receipt.VendorID,
		LocationID:          receipt.LocationID,
		ReceiptDate:         receipt.ReceiptDate,
		Currency:            receipt.Currency.String(),
		ExchangeRate:        receipt.ExchangeRate,
		Subtotal:            receipt.Subtotal,
		TaxTotal:            receipt.TaxTotal,
		Total:               receipt.Total,
		Status:              receipt.Status.String(),
		Lines:               lines,
		PurchaseOrderID:     receipt.PurchaseOrderID,
		BillID:              receipt.BillID,
		LedgerTransactionID: receipt.LedgerTransactionID,
		Warnings:            warnings,
	}
}
