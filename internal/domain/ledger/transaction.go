package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// TransactionType classifies the business event behind a ledger transaction
type TransactionType string

const (
	TransactionTypeBill       TransactionType = "BILL"
	TransactionTypePayment    TransactionType = "PAYMENT"
	TransactionTypeInvoice    TransactionType = "INVOICE"
	TransactionTypeReceipt    TransactionType = "RECEIPT"
	TransactionTypeJournal    TransactionType = "JOURNAL"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
	TransactionTypeReversal   TransactionType = "REVERSAL"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeBill, TransactionTypePayment, TransactionTypeInvoice,
		TransactionTypeReceipt, TransactionTypeJournal, TransactionTypeAdjustment,
		TransactionTypeReversal:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// EntryDirection is the side of a ledger entry
type EntryDirection string

const (
	DirectionDebit  EntryDirection = "DEBIT"
	DirectionCredit EntryDirection = "CREDIT"
)

// IsValid checks if the direction is valid
func (d EntryDirection) IsValid() bool {
	return d == DirectionDebit || d == DirectionCredit
}

// String returns the string representation of EntryDirection
func (d EntryDirection) String() string {
	return string(d)
}

// Opposite returns the other side
func (d EntryDirection) Opposite() EntryDirection {
	if d == DirectionDebit {
		return DirectionCredit
	}
	return DirectionDebit
}

// LedgerEntry is one line of a ledger transaction. An entry never exists
// outside its transaction; the transaction owns its entries for their whole
// lifetime.
type LedgerEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Direction     EntryDirection  `gorm:"type:varchar(6);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsDebit returns true for debit entries
func (e *LedgerEntry) IsDebit() bool {
	return e.Direction == DirectionDebit
}

// LedgerTransaction is an atomic financial event recorded as a balanced set of
// debit and credit entries. Once created it is logically immutable; a
// correction is a new reversing transaction, never an edit.
type LedgerTransaction struct {
	shared.TenantAggregateRoot
	TransactionNumber string               `gorm:"type:varchar(50);not null;uniqueIndex:idx_ledger_tx_tenant_number,priority:2"`
	TransactionDate   time.Time            `gorm:"not null;index"`
	Type              TransactionType      `gorm:"type:varchar(20);not null"`
	Currency          valueobject.Currency `gorm:"type:varchar(3);not null"`
	Description       string               `gorm:"type:varchar(500)"`
	ReferenceType     string               `gorm:"type:varchar(50)"`
	ReferenceID       *uuid.UUID           `gorm:"type:uuid;index"`
	Entries           []LedgerEntry        `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for GORM
func (LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// TransactionHeader carries the caller-supplied fields of a new transaction
type TransactionHeader struct {
	TransactionNumber string
	TransactionDate   time.Time
	Type              TransactionType
	Currency          valueobject.Currency
	Description       string
	ReferenceType     string
	ReferenceID       *uuid.UUID
	CreatedBy         *uuid.UUID
}

// EntryInput is one requested entry line before validation
type EntryInput struct {
	AccountID   uuid.UUID
	Direction   EntryDirection
	Amount      decimal.Decimal
	Description string
}

// TotalDebits sums the debit entries
func (t *LedgerTransaction) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		if e.Direction == DirectionDebit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit entries
func (t *LedgerTransaction) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		if e.Direction == DirectionCredit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// IsBalanced returns true if total debits equal total credits
func (t *LedgerTransaction) IsBalanced() bool {
	return t.TotalDebits().Equal(t.TotalCredits())
}

// AccountIDs returns the distinct accounts referenced by the entries
func (t *LedgerTransaction) AccountIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(t.Entries))
	ids := make([]uuid.UUID, 0, len(t.Entries))
	for _, e := range t.Entries {
		if _, ok := seen[e.AccountID]; !ok {
			seen[e.AccountID] = struct{}{}
			ids = append(ids, e.AccountID)
		}
	}
	return ids
}
