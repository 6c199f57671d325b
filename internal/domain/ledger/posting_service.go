package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// PostingService builds balanced ledger transactions and applies their effect
// to account balances. It is a pure domain service: it validates and mutates
// the aggregates handed to it, and the caller persists everything in one
// atomic unit. Account balances and entries therefore always move together.
type PostingService struct{}

// NewPostingService creates a new PostingService
func NewPostingService() *PostingService {
	return &PostingService{}
}

// Post validates the header and entries against the supplied accounts, builds
// the transaction aggregate and applies every entry to its account balance.
//
// Accounts must be keyed by ID and belong to the header's tenant. Amounts are
// rounded to the monetary precision before the balance check, so a posting
// that only balances beyond that precision is rejected.
func (s *PostingService) Post(tenantID uuid.UUID, header TransactionHeader, entries []EntryInput, accounts map[uuid.UUID]*Account) (*LedgerTransaction, error) {
	if err := s.validateHeader(header); err != nil {
		return nil, err
	}
	if len(entries) < 2 {
		return nil, shared.NewDomainError("TOO_FEW_ENTRIES", "A ledger transaction requires at least two entries")
	}

	totalDebits := valueobject.Zero(header.Currency)
	totalCredits := valueobject.Zero(header.Currency)

	tx := &LedgerTransaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		TransactionNumber:   header.TransactionNumber,
		TransactionDate:     header.TransactionDate,
		Type:                header.Type,
		Currency:            header.Currency,
		Description:         header.Description,
		ReferenceType:       header.ReferenceType,
		ReferenceID:         header.ReferenceID,
		Entries:             make([]LedgerEntry, 0, len(entries)),
	}
	if header.CreatedBy != nil {
		tx.SetCreatedBy(*header.CreatedBy)
	}

	for i, in := range entries {
		if !in.Direction.IsValid() {
			return nil, shared.NewDomainError("INVALID_DIRECTION", fmt.Sprintf("Entry %d has an invalid direction", i))
		}
		if !in.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_AMOUNT", fmt.Sprintf("Entry %d amount must be positive", i))
		}

		account, ok := accounts[in.AccountID]
		if !ok {
			return nil, shared.NewDomainError("UNKNOWN_ACCOUNT", fmt.Sprintf("Entry %d references an unknown account", i))
		}
		if account.TenantID != tenantID {
			return nil, shared.NewDomainError("UNKNOWN_ACCOUNT", fmt.Sprintf("Entry %d references an account outside the organization", i))
		}
		if !account.IsActive {
			return nil, shared.NewDomainError("INACTIVE_ACCOUNT", fmt.Sprintf("Account %s is inactive", account.Code))
		}

		amount := in.Amount.Round(valueobject.MoneyPlaces)
		entryMoney, err := valueobject.NewMoney(amount, header.Currency)
		if err != nil {
			return nil, err
		}
		if in.Direction == DirectionDebit {
			totalDebits = totalDebits.MustAdd(entryMoney)
		} else {
			totalCredits = totalCredits.MustAdd(entryMoney)
		}

		tx.Entries = append(tx.Entries, LedgerEntry{
			ID:            uuid.New(),
			TransactionID: tx.ID,
			AccountID:     in.AccountID,
			Direction:     in.Direction,
			Amount:        amount,
			Description:   in.Description,
			CreatedAt:     time.Now(),
		})
	}

	if !totalDebits.Equals(totalCredits) {
		return nil, shared.ErrUnbalancedTransaction
	}

	// Balance check passed: apply each entry to its account. The caller must
	// persist the transaction and the touched accounts in one transaction.
	for _, e := range tx.Entries {
		account := accounts[e.AccountID]
		if e.Direction == DirectionDebit {
			account.ApplyDebit(e.Amount)
		} else {
			account.ApplyCredit(e.Amount)
		}
	}

	return tx, nil
}

// BuildReversal constructs the entry inputs and header for a transaction that
// undoes the original: same accounts and amounts with swapped sides,
// referencing the original transaction. The original is never mutated.
func (s *PostingService) BuildReversal(original *LedgerTransaction, transactionNumber, description string, reversalDate time.Time) (TransactionHeader, []EntryInput) {
	header := TransactionHeader{
		TransactionNumber: transactionNumber,
		TransactionDate:   reversalDate,
		Type:              TransactionTypeReversal,
		Currency:          original.Currency,
		Description:       description,
		ReferenceType:     "LEDGER_TRANSACTION",
		ReferenceID:       &original.ID,
	}

	entries := make([]EntryInput, 0, len(original.Entries))
	for _, e := range original.Entries {
		entries = append(entries, EntryInput{
			AccountID:   e.AccountID,
			Direction:   e.Direction.Opposite(),
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	return header, entries
}

func (s *PostingService) validateHeader(header TransactionHeader) error {
	if header.TransactionNumber == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Transaction number cannot be empty")
	}
	if header.TransactionDate.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Transaction date is required")
	}
	if !header.Type.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Unknown transaction type")
	}
	if !header.Currency.IsValid() {
		return shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}
	return nil
}
