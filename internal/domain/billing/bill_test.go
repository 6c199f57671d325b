package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

func testBill(t *testing.T) *Bill {
	t.Helper()

	billDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	bill, err := NewBill(uuid.New(), "BILL-2026-001", uuid.New(), valueobject.UGX, billDate, billDate.AddDate(0, 0, 30), []BillLineInput{
		{Description: "Steel pipes", Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(50), TaxRate: decimal.NewFromFloat(0.18)},
		{Description: "Copper wire", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(25)},
	})
	require.NoError(t, err)
	return bill
}

func TestNewBill(t *testing.T) {
	t.Run("computes line and header totals", func(t *testing.T) {
		bill := testBill(t)

		assert.True(t, bill.Subtotal.Equal(decimal.NewFromInt(6000)), "subtotal = %s", bill.Subtotal)
		assert.True(t, bill.TaxTotal.Equal(decimal.NewFromInt(900)), "tax = %s", bill.TaxTotal)
		assert.True(t, bill.Total.Equal(decimal.NewFromInt(6900)))
		assert.Equal(t, BillStatusOpen, bill.Status)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := NewBill(uuid.New(), "BILL-001", uuid.New(), valueobject.UGX, time.Now(), time.Now(), nil)
		assert.Error(t, err)
	})

	t.Run("rejects due date before bill date", func(t *testing.T) {
		billDate := time.Now()
		_, err := NewBill(uuid.New(), "BILL-001", uuid.New(), valueobject.UGX, billDate, billDate.AddDate(0, 0, -1), []BillLineInput{
			{Description: "Item", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})

	t.Run("rejects zero quantity line", func(t *testing.T) {
		_, err := NewBill(uuid.New(), "BILL-001", uuid.New(), valueobject.UGX, time.Now(), time.Now(), []BillLineInput{
			{Description: "Item", Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})
}

func TestBillPayments(t *testing.T) {
	t.Run("partial then full payment", func(t *testing.T) {
		bill := testBill(t)

		require.NoError(t, bill.ApplyPayment(decimal.NewFromInt(4000)))
		assert.Equal(t, BillStatusPartial, bill.Status)
		assert.True(t, bill.OutstandingAmount().Equal(decimal.NewFromInt(2900)))

		require.NoError(t, bill.ApplyPayment(decimal.NewFromInt(2900)))
		assert.Equal(t, BillStatusPaid, bill.Status)
		assert.NotNil(t, bill.PaidAt)
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		bill := testBill(t)
		err := bill.ApplyPayment(decimal.NewFromInt(7000))
		assert.Error(t, err)
	})

	t.Run("rejects payment on cancelled bill", func(t *testing.T) {
		bill := testBill(t)
		require.NoError(t, bill.Cancel("duplicate entry"))

		err := bill.ApplyPayment(decimal.NewFromInt(100))
		assert.Error(t, err)
	})
}

func TestBillLinks(t *testing.T) {
	bill := testBill(t)
	receiptID := uuid.New()
	txID := uuid.New()

	bill.LinkGoodsReceipt(receiptID)
	bill.LinkLedgerTransaction(txID)

	require.NotNil(t, bill.GoodsReceiptID)
	assert.Equal(t, receiptID, *bill.GoodsReceiptID)
	require.NotNil(t, bill.LedgerTransactionID)
	assert.Equal(t, txID, *bill.LedgerTransactionID)
}
