package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/billing"
)

// ApplyPaymentRequest represents a payment applied against a bill
type ApplyPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CancelBillRequest represents a request to cancel an open bill
type CancelBillRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// BillLineResponse represents one bill line
type BillLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
}

// BillResponse represents a vendor bill in API responses
type BillResponse struct {
	ID                  uuid.UUID          `json:"id"`
	BillNumber          string             `json:"bill_number"`
	VendorID            uuid.UUID          `json:"vendor_id"`
	Currency            string             `json:"currency"`
	BillDate            time.Time          `json:"bill_date"`
	DueDate             time.Time          `json:"due_date"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	TaxTotal            decimal.Decimal    `json:"tax_total"`
	Total               decimal.Decimal    `json:"total"`
	PaidAmount          decimal.Decimal    `json:"paid_amount"`
	Outstanding         decimal.Decimal    `json:"outstanding"`
	Status              string             `json:"status"`
	GoodsReceiptID      *uuid.UUID         `json:"goods_receipt_id,omitempty"`
	LedgerTransactionID *uuid.UUID         `json:"ledger_transaction_id,omitempty"`
	Lines               []BillLineResponse `json:"lines"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ToBillResponse maps a domain bill to its response shape
func ToBillResponse(b *billing.Bill) BillResponse {
	lines := make([]BillLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, BillLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate,
			Subtotal:    l.Subtotal,
			TaxAmount:   l.TaxAmount,
		})
	}

	return BillResponse{
		ID:                  b.ID,
		BillNumber:          b.BillNumber,
		VendorID:            b.VendorID,
		Currency:            b.Currency.String(),
		BillDate:            b.BillDate,
		DueDate:             b.DueDate,
		Subtotal:            b.Subtotal,
		TaxTotal:            b.TaxTotal,
		Total:               b.Total,
		PaidAmount:          b.PaidAmount,
		Outstanding:         b.OutstandingAmount(),
		Status:              b.Status.String(),
		GoodsReceiptID:      b.GoodsReceiptID,
		LedgerTransactionID: b.LedgerTransactionID,
		Lines:               lines,
		CreatedAt:           b.CreatedAt,
	}
}
