package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

func TestNewAccount(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates account successfully", func(t *testing.T) {
		account, err := NewAccount(tenantID, "1200", "Inventory", AccountTypeAsset, valueobject.UGX)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, tenantID, account.TenantID)
		assert.Equal(t, "1200", account.Code)
		assert.True(t, account.Balance.IsZero())
		assert.True(t, account.IsActive)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewAccount(tenantID, "", "Inventory", AccountTypeAsset, valueobject.UGX)
		require.Error(t, err)
	})

	t.Run("fails with unknown account type", func(t *testing.T) {
		_, err := NewAccount(tenantID, "1200", "Inventory", AccountType("CONTRA"), valueobject.UGX)
		require.Error(t, err)
	})

	t.Run("fails with unknown currency", func(t *testing.T) {
		_, err := NewAccount(tenantID, "1200", "Inventory", AccountTypeAsset, valueobject.Currency("XXX"))
		require.Error(t, err)
	})
}

func TestAccountType_IsDebitNormal(t *testing.T) {
	assert.True(t, AccountTypeAsset.IsDebitNormal())
	assert.True(t, AccountTypeExpense.IsDebitNormal())
	assert.False(t, AccountTypeLiability.IsDebitNormal())
	assert.False(t, AccountTypeEquity.IsDebitNormal())
	assert.False(t, AccountTypeRevenue.IsDebitNormal())
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	tenantID := uuid.New()
	amount := decimal.NewFromInt(100)

	t.Run("debit increases an asset account", func(t *testing.T) {
		account, _ := NewAccount(tenantID, "1200", "Inventory", AccountTypeAsset, valueobject.UGX)

		account.ApplyDebit(amount)
		assert.Equal(t, "100", account.Balance.String())

		account.ApplyCredit(decimal.NewFromInt(40))
		assert.Equal(t, "60", account.Balance.String())
	})

	t.Run("credit increases a liability account", func(t *testing.T) {
		account, _ := NewAccount(tenantID, "2100", "Accounts Payable", AccountTypeLiability, valueobject.UGX)

		account.ApplyCredit(amount)
		assert.Equal(t, "100", account.Balance.String())

		account.ApplyDebit(decimal.NewFromInt(30))
		assert.Equal(t, "70", account.Balance.String())
	})

	t.Run("balance application bumps version", func(t *testing.T) {
		account, _ := NewAccount(tenantID, "5100", "Freight Expense", AccountTypeExpense, valueobject.UGX)
		before := account.Version

		account.ApplyDebit(amount)
		assert.Equal(t, before+1, account.Version)
	})
}

func TestAccount_Deactivate(t *testing.T) {
	account, _ := NewAccount(uuid.New(), "4000", "Sales Revenue", AccountTypeRevenue, valueobject.USD)

	account.Deactivate()
	assert.False(t, account.IsActive)

	account.Activate()
	assert.True(t, account.IsActive)
}
