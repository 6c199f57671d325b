package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/ledger"
)

// ==================== Ledger DTOs ====================

// EntryInputRequest represents one requested entry line
type EntryInputRequest struct {
	AccountID   uuid.UUID       `json:"account_id" binding:"required"`
	Direction   string          `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// PostTransactionRequest represents a request to post a ledger transaction
type PostTransactionRequest struct {
	TransactionNumber string              `json:"transaction_number" binding:"required,min=1,max=50"`
	TransactionDate   time.Time           `json:"transaction_date" binding:"required"`
	Type              string              `json:"type" binding:"required"`
	Currency          string              `json:"currency" binding:"required,currencycode"`
	Description       string              `json:"description" binding:"max=500"`
	ReferenceType     string              `json:"reference_type" binding:"max=50"`
	ReferenceID       *uuid.UUID          `json:"reference_id"`
	CreatedBy         *uuid.UUID          `json:"-"`
	Entries           []EntryInputRequest `json:"entries" binding:"required,min=2,dive"`
}

// ReverseTransactionRequest represents a request to reverse a posted transaction
type ReverseTransactionRequest struct {
	TransactionNumber string    `json:"transaction_number" binding:"required,min=1,max=50"`
	ReversalDate      time.Time `json:"reversal_date" binding:"required"`
	Description       string    `json:"description" binding:"max=500"`
}

// CreateAccountRequest represents a request to create a chart-of-accounts entry
type CreateAccountRequest struct {
	Code     string `json:"code" binding:"required,min=1,max=20"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Type     string `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Currency string `json:"currency" binding:"required,currencycode"`
}

// EntryResponse represents one entry of a posted transaction
type EntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	Direction   string          `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// TransactionResponse represents a posted ledger transaction
type TransactionResponse struct {
	ID                uuid.UUID       `json:"id"`
	TransactionNumber string          `json:"transaction_number"`
	TransactionDate   time.Time       `json:"transaction_date"`
	Type              string          `json:"type"`
	Currency          string          `json:"currency"`
	Description       string          `json:"description,omitempty"`
	ReferenceType     string          `json:"reference_type,omitempty"`
	ReferenceID       *uuid.UUID      `json:"reference_id,omitempty"`
	TotalDebits       decimal.Decimal `json:"total_debits"`
	TotalCredits      decimal.Decimal `json:"total_credits"`
	Entries           []EntryResponse `json:"entries"`
	CreatedAt         time.Time       `json:"created_at"`
}

// AccountResponse represents an account with its running balance
type AccountResponse struct {
	ID       uuid.UUID       `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"is_active"`
}

// ToTransactionResponse maps a domain transaction to its response shape
func ToTransactionResponse(tx *ledger.LedgerTransaction) TransactionResponse {
	entries := make([]EntryResponse, 0, len(tx.Entries))
	for _, e := range tx.Entries {
		entries = append(entries, EntryResponse{
			ID:          e.ID,
			AccountID:   e.AccountID,
			Direction:   e.Direction.String(),
			Amount:      e.Amount,
			Description: e.Description,
		})
	}

	return TransactionResponse{
		ID:                tx.ID,
		TransactionNumber: tx.TransactionNumber,
		TransactionDate:   tx.TransactionDate,
		Type:              tx.Type.String(),
		Currency:          tx.Currency.String(),
		Description:       tx.Description,
		ReferenceType:     tx.ReferenceType,
		ReferenceID:       tx.ReferenceID,
		TotalDebits:       tx.TotalDebits(),
		TotalCredits:      tx.TotalCredits(),
		Entries:           entries,
		CreatedAt:         tx.CreatedAt,
	}
}

// ToAccountResponse maps a domain account to its response shape
func ToAccountResponse(account *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Code:     account.Code,
		Name:     account.Name,
		Type:     account.Type.String(),
		Currency: account.Currency.String(),
		Balance:  account.Balance,
		IsActive: account.IsActive,
	}
}
