package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

type postingFixture struct {
	tenantID  uuid.UUID
	inventory *Account
	vat       *Account
	payable   *Account
	accounts  map[uuid.UUID]*Account
}

func newPostingFixture(t *testing.T) *postingFixture {
	t.Helper()
	tenantID := uuid.New()

	inventory, err := NewAccount(tenantID, "1200", "Inventory", AccountTypeAsset, valueobject.UGX)
	require.NoError(t, err)
	vat, err := NewAccount(tenantID, "1400", "VAT Receivable", AccountTypeAsset, valueobject.UGX)
	require.NoError(t, err)
	payable, err := NewAccount(tenantID, "2100", "Accounts Payable", AccountTypeLiability, valueobject.UGX)
	require.NoError(t, err)

	return &postingFixture{
		tenantID:  tenantID,
		inventory: inventory,
		vat:       vat,
		payable:   payable,
		accounts: map[uuid.UUID]*Account{
			inventory.ID: inventory,
			vat.ID:       vat,
			payable.ID:   payable,
		},
	}
}

func (f *postingFixture) header() TransactionHeader {
	return TransactionHeader{
		TransactionNumber: "TXN-0001",
		TransactionDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:              TransactionTypeBill,
		Currency:          valueobject.UGX,
		Description:       "Goods receipt GR-0001",
	}
}

func TestPostingService_Post(t *testing.T) {
	service := NewPostingService()

	t.Run("posts a balanced bill transaction and updates balances", func(t *testing.T) {
		f := newPostingFixture(t)

		tx, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.vat.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(18)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(118)},
		}, f.accounts)

		require.NoError(t, err)
		require.Len(t, tx.Entries, 3)
		assert.True(t, tx.IsBalanced())
		assert.Equal(t, "118", tx.TotalDebits().String())
		assert.Equal(t, "118", tx.TotalCredits().String())

		assert.Equal(t, "100", f.inventory.Balance.String())
		assert.Equal(t, "18", f.vat.Balance.String())
		assert.Equal(t, "118", f.payable.Balance.String())
	})

	t.Run("rejects an unbalanced transaction and leaves balances untouched", func(t *testing.T) {
		f := newPostingFixture(t)

		_, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.vat.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(18)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrUnbalancedTransaction))
		assert.True(t, f.inventory.Balance.IsZero())
		assert.True(t, f.vat.Balance.IsZero())
		assert.True(t, f.payable.Balance.IsZero())
	})

	t.Run("balance check applies after rounding to monetary precision", func(t *testing.T) {
		f := newPostingFixture(t)

		// 100.004 rounds to 100.00, so this balances at two decimal places.
		tx, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.RequireFromString("100.004")},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.NoError(t, err)
		assert.Equal(t, "100", tx.TotalDebits().String())
	})

	t.Run("requires at least two entries", func(t *testing.T) {
		f := newPostingFixture(t)

		_, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least two entries")
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newPostingFixture(t)

		_, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.Zero},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.Zero},
		}, f.accounts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("rejects unknown accounts", func(t *testing.T) {
		f := newPostingFixture(t)

		_, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: uuid.New(), Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown account")
	})

	t.Run("rejects accounts from another tenant", func(t *testing.T) {
		f := newPostingFixture(t)
		foreign, err := NewAccount(uuid.New(), "1200", "Inventory", AccountTypeAsset, valueobject.UGX)
		require.NoError(t, err)
		f.accounts[foreign.ID] = foreign

		_, err = service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: foreign.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside the organization")
	})

	t.Run("rejects inactive accounts", func(t *testing.T) {
		f := newPostingFixture(t)
		f.inventory.Deactivate()

		_, err := service.Post(f.tenantID, f.header(), []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "inactive")
	})

	t.Run("rejects invalid header", func(t *testing.T) {
		f := newPostingFixture(t)
		header := f.header()
		header.Type = TransactionType("WIRE")

		_, err := service.Post(f.tenantID, header, []EntryInput{
			{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
			{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
		}, f.accounts)

		require.Error(t, err)
	})
}

func TestPostingService_BuildReversal(t *testing.T) {
	service := NewPostingService()
	f := newPostingFixture(t)

	original, err := service.Post(f.tenantID, f.header(), []EntryInput{
		{AccountID: f.inventory.ID, Direction: DirectionDebit, Amount: decimal.NewFromInt(100)},
		{AccountID: f.payable.ID, Direction: DirectionCredit, Amount: decimal.NewFromInt(100)},
	}, f.accounts)
	require.NoError(t, err)

	header, entries := service.BuildReversal(original, "TXN-0002", "Reversal of TXN-0001", time.Now())

	assert.Equal(t, TransactionTypeReversal, header.Type)
	require.NotNil(t, header.ReferenceID)
	assert.Equal(t, original.ID, *header.ReferenceID)
	require.Len(t, entries, 2)
	assert.Equal(t, DirectionCredit, entries[0].Direction)
	assert.Equal(t, DirectionDebit, entries[1].Direction)

	// Posting the reversal restores the original balances.
	_, err = service.Post(f.tenantID, header, entries, f.accounts)
	require.NoError(t, err)
	assert.True(t, f.inventory.Balance.IsZero())
	assert.True(t, f.payable.Balance.IsZero())
}
