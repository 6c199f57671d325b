package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// BillStatus represents the payment status of a vendor bill
type BillStatus string

const (
	BillStatusOpen      BillStatus = "OPEN"
	BillStatusPartial   BillStatus = "PARTIAL"
	BillStatusPaid      BillStatus = "PAID"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// IsValid checks if the status is a valid BillStatus
func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusOpen, BillStatusPartial, BillStatusPaid, BillStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BillStatus
func (s BillStatus) String() string {
	return string(s)
}

// CanApplyPayment returns true if payments can be applied in this status
func (s BillStatus) CanApplyPayment() bool {
	return s == BillStatusOpen || s == BillStatusPartial
}

// BillLine represents a line item on a vendor bill
type BillLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	BillID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   *uuid.UUID      `gorm:"type:uuid"`
	Description string          `gorm:"type:varchar(200);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillLine) TableName() string {
	return "bill_lines"
}

// BillLineInput carries the values for one bill line at creation time
type BillLineInput struct {
	ProductID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
}

// Bill tracks money owed to a vendor for goods received. Bills created by
// the receiving flow carry a link back to their goods receipt.
type Bill struct {
	shared.TenantAggregateRoot
	BillNumber          string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_bill_tenant_number,priority:2"`
	VendorID            uuid.UUID            `gorm:"type:uuid;not null;index"`
	Currency            valueobject.Currency `gorm:"type:varchar(3);not null"`
	BillDate            time.Time            `gorm:"not null"`
	DueDate             time.Time            `gorm:"not null"`
	Lines               []BillLine           `gorm:"foreignKey:BillID;references:ID"`
	Subtotal            decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	TaxTotal            decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Total               decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	PaidAmount          decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Status              BillStatus           `gorm:"type:varchar(20);not null;default:'OPEN'"`
	GoodsReceiptID      *uuid.UUID           `gorm:"type:uuid;index"`
	LedgerTransactionID *uuid.UUID           `gorm:"type:uuid"`
	PaidAt              *time.Time
	CancelledAt         *time.Time
	CancelReason        string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Bill) TableName() string {
	return "bills"
}

// NewBill creates an open bill with its lines and computed totals
func NewBill(tenantID uuid.UUID, billNumber string, vendorID uuid.UUID, currency valueobject.Currency, billDate, dueDate time.Time, lines []BillLineInput) (*Bill, error) {
	if billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", fmt.Sprintf("Unknown currency: %s", currency))
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_LINES", "Bill must have at least one line")
	}
	if dueDate.Before(billDate) {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot precede the bill date")
	}

	bill := &Bill{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		BillNumber:          billNumber,
		VendorID:            vendorID,
		Currency:            currency,
		BillDate:            billDate,
		DueDate:             dueDate,
		Lines:               make([]BillLine, 0, len(lines)),
		Subtotal:            decimal.Zero,
		TaxTotal:            decimal.Zero,
		Total:               decimal.Zero,
		PaidAmount:          decimal.Zero,
		Status:              BillStatusOpen,
	}

	now := time.Now()
	for _, in := range lines {
		if in.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
		if in.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Line unit price cannot be negative")
		}
		if in.TaxRate.IsNegative() {
			return nil, shared.NewDomainError("INVALID_TAX_RATE", "Line tax rate cannot be negative")
		}

		subtotal := in.Quantity.Mul(in.UnitPrice).Round(valueobject.MoneyPlaces)
		tax := subtotal.Mul(in.TaxRate).Round(valueobject.MoneyPlaces)

		bill.Lines = append(bill.Lines, BillLine{
			ID:          uuid.New(),
			BillID:      bill.ID,
			ProductID:   in.ProductID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TaxRate:     in.TaxRate,
			Subtotal:    subtotal,
			TaxAmount:   tax,
			CreatedAt:   now,
		})
		bill.Subtotal = bill.Subtotal.Add(subtotal)
		bill.TaxTotal = bill.TaxTotal.Add(tax)
	}
	bill.Total = bill.Subtotal.Add(bill.TaxTotal)

	return bill, nil
}

// LinkGoodsReceipt records the receipt this bill was created from
func (b *Bill) LinkGoodsReceipt(receiptID uuid.UUID) {
	b.GoodsReceiptID = &receiptID
	b.UpdatedAt = time.Now()
}

// LinkLedgerTransaction records the GL transaction this bill was posted under
func (b *Bill) LinkLedgerTransaction(transactionID uuid.UUID) {
	b.LedgerTransactionID = &transactionID
	b.UpdatedAt = time.Now()
}

// OutstandingAmount returns the unpaid portion of the bill
func (b *Bill) OutstandingAmount() decimal.Decimal {
	return b.Total.Sub(b.PaidAmount)
}

// ApplyPayment applies a payment against the outstanding balance
func (b *Bill) ApplyPayment(amount decimal.Decimal) error {
	if !b.Status.CanApplyPayment() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot apply payment to bill in %s status", b.Status))
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(b.OutstandingAmount()) {
		return shared.NewDomainError("OVERPAYMENT", fmt.Sprintf("Payment %s exceeds outstanding %s", amount, b.OutstandingAmount()))
	}

	b.PaidAmount = b.PaidAmount.Add(amount)
	if b.OutstandingAmount().IsZero() {
		now := time.Now()
		b.Status = BillStatusPaid
		b.PaidAt = &now
	} else {
		b.Status = BillStatusPartial
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Cancel voids an unpaid bill
func (b *Bill) Cancel(reason string) error {
	if b.Status != BillStatusOpen {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel bill in %s status", b.Status))
	}

	now := time.Now()
	b.Status = BillStatusCancelled
	b.CancelledAt = &now
	b.CancelReason = reason
	b.UpdatedAt = now
	b.IncrementVersion()

	return nil
}
