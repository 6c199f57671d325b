package receiving

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// ReceiptStatus is the lifecycle state of a goods receipt. Transitions move
// forward only: RECEIVED -> POSTED.
type ReceiptStatus string

const (
	ReceiptStatusReceived ReceiptStatus = "RECEIVED"
	ReceiptStatusPosted   ReceiptStatus = "POSTED"
)

// IsValid checks if the status is a valid ReceiptStatus
func (s ReceiptStatus) IsValid() bool {
	return s == ReceiptStatusReceived || s == ReceiptStatusPosted
}

// String returns the string representation of ReceiptStatus
func (s ReceiptStatus) String() string {
	return string(s)
}

// GoodsReceiptLine is one received product line. The original unit cost is
// what the vendor charged; the landed unit cost is set after landed-cost
// allocation and includes the line's share of indirect costs.
type GoodsReceiptLine struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	ReceiptID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID        `gorm:"type:uuid;not null"`
	ProductName      string           `gorm:"type:varchar(200);not null"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	UnitPrice        decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TaxRate          decimal.Decimal  `gorm:"type:decimal(8,4);not null;default:0"`
	LineSubtotal     decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	LineTax          decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	LineTotal        decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	OriginalUnitCost decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	LandedUnitCost   *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Weight           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Volume           *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PurchaseOrderLineID *uuid.UUID    `gorm:"type:uuid"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GoodsReceiptLine) TableName() string {
	return "goods_receipt_lines"
}

// EffectiveUnitCost returns the landed unit cost when allocated, otherwise the
// original unit cost
func (l *GoodsReceiptLine) EffectiveUnitCost() decimal.Decimal {
	if l.LandedUnitCost != nil {
		return *l.LandedUnitCost
	}
	return l.OriginalUnitCost
}

// SetLandedUnitCost records the post-allocation unit cost
func (l *GoodsReceiptLine) SetLandedUnitCost(cost decimal.Decimal) {
	c := cost
	l.LandedUnitCost = &c
	l.UpdatedAt = time.Now()
}

// GoodsReceipt represents one physical delivery of vendor stock: a header and
// its lines, with subtotal/tax/total in the document currency and the
// exchange rate embedded on the document. The receipt exclusively owns its
// lines.
type GoodsReceipt struct {
	shared.TenantAggregateRoot
	ReceiptNumber    string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_receipt_tenant_number,priority:2"`
	VendorID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	LocationID       uuid.UUID            `gorm:"type:uuid;not null"`
	ReceiptDate      time.Time            `gorm:"not null"`
	Currency         valueobject.Currency `gorm:"type:varchar(3);not null"`
	ExchangeRate     *decimal.Decimal     `gorm:"type:decimal(18,8)"`
	Subtotal         decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	TaxTotal         decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Total            decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Status           ReceiptStatus        `gorm:"type:varchar(20);not null;default:'RECEIVED'"`
	LandedCosts      CostComponents       `gorm:"embedded;embeddedPrefix:landed_"`
	AllocationMethod *AllocationMethod    `gorm:"type:varchar(20)"`
	PurchaseOrderID  *uuid.UUID           `gorm:"type:uuid;index"`
	BillID           *uuid.UUID           `gorm:"type:uuid"`
	LedgerTransactionID *uuid.UUID        `gorm:"type:uuid"`
	Remark           string               `gorm:"type:varchar(500)"`
	Lines            []GoodsReceiptLine   `gorm:"foreignKey:ReceiptID;references:ID"`
}

// TableName returns the table name for GORM
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// LineInput is the caller-supplied data for one receipt line
type LineInput struct {
	ProductID           uuid.UUID
	ProductName         string
	Quantity            decimal.Decimal
	UnitPrice           decimal.Decimal
	TaxRate             decimal.Decimal
	Weight              *decimal.Decimal
	Volume              *decimal.Decimal
	PurchaseOrderLineID *uuid.UUID
}

// NewGoodsReceipt builds a receipt header plus lines, computing per-line
// subtotal/tax/total and the header totals from quantity, price and tax rate.
func NewGoodsReceipt(tenantID uuid.UUID, receiptNumber string, vendorID, locationID uuid.UUID, receiptDate time.Time, docCurrency valueobject.Currency, lines []LineInput) (*GoodsReceipt, error) {
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Receipt number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location ID cannot be empty")
	}
	if !docCurrency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_LINES", "A goods receipt requires at least one line")
	}

	receipt := &GoodsReceipt{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ReceiptNumber:       receiptNumber,
		VendorID:            vendorID,
		LocationID:          locationID,
		ReceiptDate:         receiptDate,
		Currency:            docCurrency,
		Subtotal:            decimal.Zero,
		TaxTotal:            decimal.Zero,
		Total:               decimal.Zero,
		Status:              ReceiptStatusReceived,
		Lines:               make([]GoodsReceiptLine, 0, len(lines)),
	}

	for i, in := range lines {
		if in.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", fmt.Sprintf("Line %d product ID cannot be empty", i))
		}
		if !in.Quantity.IsPositive() {
			return nil, shared.NewDomainError("INVALID_QUANTITY", fmt.Sprintf("Line %d quantity must be positive", i))
		}
		if in.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", fmt.Sprintf("Line %d unit price cannot be negative", i))
		}
		if in.TaxRate.IsNegative() {
			return nil, shared.NewDomainError("INVALID_TAX_RATE", fmt.Sprintf("Line %d tax rate cannot be negative", i))
		}

		lineSubtotal := in.Quantity.Mul(in.UnitPrice).Round(valueobject.MoneyPlaces)
		lineTax := lineSubtotal.Mul(in.TaxRate).Round(valueobject.MoneyPlaces)
		now := time.Now()

		receipt.Lines = append(receipt.Lines, GoodsReceiptLine{
			ID:                  uuid.New(),
			ReceiptID:           receipt.ID,
			ProductID:           in.ProductID,
			ProductName:         in.ProductName,
			Quantity:            in.Quantity,
			UnitPrice:           in.UnitPrice,
			TaxRate:             in.TaxRate,
			LineSubtotal:        lineSubtotal,
			LineTax:             lineTax,
			LineTotal:           lineSubtotal.Add(lineTax),
			OriginalUnitCost:    in.UnitPrice,
			Weight:              in.Weight,
			Volume:              in.Volume,
			PurchaseOrderLineID: in.PurchaseOrderLineID,
			CreatedAt:           now,
			UpdatedAt:           now,
		})

		receipt.Subtotal = receipt.Subtotal.Add(lineSubtotal)
		receipt.TaxTotal = receipt.TaxTotal.Add(lineTax)
	}
	receipt.Total = receipt.Subtotal.Add(receipt.TaxTotal)

	return receipt, nil
}

// SetExchangeRate records the document exchange rate. The rate embedded on
// the receipt is authoritative for this document over any resolver lookup.
func (r *GoodsReceipt) SetExchangeRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}
	r.ExchangeRate = &rate
	r.UpdatedAt = time.Now()
	return nil
}

// SetLandedCosts attaches the indirect cost components and allocation method
func (r *GoodsReceipt) SetLandedCosts(components CostComponents, method AllocationMethod) error {
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_METHOD", "Unknown allocation method")
	}
	if components.HasNegative() {
		return shared.NewDomainError("INVALID_COMPONENTS", "Landed cost components cannot be negative")
	}
	r.LandedCosts = components
	r.AllocationMethod = &method
	r.UpdatedAt = time.Now()
	return nil
}

// LinkPurchaseOrder associates the receipt with its purchase order
func (r *GoodsReceipt) LinkPurchaseOrder(poID uuid.UUID) {
	r.PurchaseOrderID = &poID
	r.UpdatedAt = time.Now()
}

// LinkBill records the payable bill generated from this receipt
func (r *GoodsReceipt) LinkBill(billID uuid.UUID) {
	r.BillID = &billID
	r.UpdatedAt = time.Now()
}

// MarkPosted transitions the receipt to POSTED, recording the ledger
// transaction it was posted under. POSTED is terminal.
func (r *GoodsReceipt) MarkPosted(ledgerTransactionID uuid.UUID) error {
	if r.Status != ReceiptStatusReceived {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot post receipt in %s status", r.Status))
	}
	r.Status = ReceiptStatusPosted
	r.LedgerTransactionID = &ledgerTransactionID
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// AllocationLines maps the receipt lines into the allocator's input shape
func (r *GoodsReceipt) AllocationLines() []AllocationLine {
	lines := make([]AllocationLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, AllocationLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.OriginalUnitCost,
			Weight:    l.Weight,
			Volume:    l.Volume,
		})
	}
	return lines
}

// HasLandedCosts returns true if any landed cost component is non-zero
func (r *GoodsReceipt) HasLandedCosts() bool {
	return !r.LandedCosts.IsZero()
}
