package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// AccountType classifies a ledger account. The type determines the account's
// normal balance side: assets and expenses increase on debit, liabilities,
// equity and revenue increase on credit.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid checks if the account type is valid
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// IsDebitNormal returns true if the account type increases on the debit side
func (t AccountType) IsDebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Account represents one account in the chart of accounts.
// Balance is mutated exclusively by the posting service; no other code path
// writes it.
type Account struct {
	shared.TenantAggregateRoot
	Code     string               `gorm:"type:varchar(20);not null;uniqueIndex:idx_account_tenant_code,priority:2"`
	Name     string               `gorm:"type:varchar(200);not null"`
	Type     AccountType          `gorm:"type:varchar(20);not null"`
	Currency valueobject.Currency `gorm:"type:varchar(3);not null"`
	Balance  decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	IsActive bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Account) TableName() string {
	return "ledger_accounts"
}

// NewAccount creates a new ledger account with a zero balance
func NewAccount(tenantID uuid.UUID, code, name string, accountType AccountType, currency valueobject.Currency) (*Account, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Account code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Unknown account type")
	}
	if !currency.IsValid() {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Unknown currency code")
	}

	return &Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		Type:                accountType,
		Currency:            currency,
		Balance:             decimal.Zero,
		IsActive:            true,
	}, nil
}

// ApplyDebit adjusts the running balance for a debit of the given amount.
// Debit-normal accounts increase; credit-normal accounts decrease.
func (a *Account) ApplyDebit(amount decimal.Decimal) {
	if a.Type.IsDebitNormal() {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// ApplyCredit adjusts the running balance for a credit of the given amount.
// Credit-normal accounts increase; debit-normal accounts decrease.
func (a *Account) ApplyCredit(amount decimal.Decimal) {
	if a.Type.IsDebitNormal() {
		a.Balance = a.Balance.Sub(amount)
	} else {
		a.Balance = a.Balance.Add(amount)
	}
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// Deactivate marks the account inactive. Inactive accounts reject new entries
// but remain referenced by historical transactions.
func (a *Account) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// Activate re-enables the account for posting
func (a *Account) Activate() {
	a.IsActive = true
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// GetBalanceMoney returns the running balance as Money in the account currency
func (a *Account) GetBalanceMoney() valueobject.Money {
	m, _ := valueobject.NewMoney(a.Balance, a.Currency)
	return m
}
