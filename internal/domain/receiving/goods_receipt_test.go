package receiving

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

func newTestReceipt(t *testing.T, lines []LineInput) *GoodsReceipt {
	t.Helper()
	receipt, err := NewGoodsReceipt(uuid.New(), "GR-0001", uuid.New(), uuid.New(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), valueobject.USD, lines)
	require.NoError(t, err)
	return receipt
}

func TestNewGoodsReceipt(t *testing.T) {
	t.Run("computes line and header totals", func(t *testing.T) {
		receipt := newTestReceipt(t, []LineInput{
			{ProductID: uuid.New(), ProductName: "Widget", Quantity: d("10"), UnitPrice: d("10"), TaxRate: d("0.18")},
			{ProductID: uuid.New(), ProductName: "Gadget", Quantity: d("5"), UnitPrice: d("20"), TaxRate: decimal.Zero},
		})

		require.Len(t, receipt.Lines, 2)
		assert.Equal(t, "100", receipt.Lines[0].LineSubtotal.String())
		assert.Equal(t, "18", receipt.Lines[0].LineTax.String())
		assert.Equal(t, "118", receipt.Lines[0].LineTotal.String())
		assert.Equal(t, "200", receipt.Subtotal.String())
		assert.Equal(t, "18", receipt.TaxTotal.String())
		assert.Equal(t, "218", receipt.Total.String())
		assert.Equal(t, ReceiptStatusReceived, receipt.Status)
	})

	t.Run("requires at least one line", func(t *testing.T) {
		_, err := NewGoodsReceipt(uuid.New(), "GR-0001", uuid.New(), uuid.New(), time.Now(), valueobject.USD, nil)
		require.Error(t, err)
	})

	t.Run("rejects zero quantity line", func(t *testing.T) {
		_, err := NewGoodsReceipt(uuid.New(), "GR-0001", uuid.New(), uuid.New(), time.Now(), valueobject.USD, []LineInput{
			{ProductID: uuid.New(), Quantity: decimal.Zero, UnitPrice: d("10")},
		})
		require.Error(t, err)
	})

	t.Run("rejects missing vendor", func(t *testing.T) {
		_, err := NewGoodsReceipt(uuid.New(), "GR-0001", uuid.Nil, uuid.New(), time.Now(), valueobject.USD, []LineInput{
			{ProductID: uuid.New(), Quantity: d("1"), UnitPrice: d("10")},
		})
		require.Error(t, err)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := NewGoodsReceipt(uuid.New(), "GR-0001", uuid.New(), uuid.New(), time.Now(), valueobject.Currency("ZZZ"), []LineInput{
			{ProductID: uuid.New(), Quantity: d("1"), UnitPrice: d("10")},
		})
		require.Error(t, err)
	})
}

func TestGoodsReceipt_SetLandedCosts(t *testing.T) {
	receipt := newTestReceipt(t, []LineInput{
		{ProductID: uuid.New(), Quantity: d("10"), UnitPrice: d("10")},
	})

	t.Run("attaches components and method", func(t *testing.T) {
		err := receipt.SetLandedCosts(CostComponents{Freight: d("50")}, AllocateByValue)
		require.NoError(t, err)
		assert.True(t, receipt.HasLandedCosts())
		require.NotNil(t, receipt.AllocationMethod)
		assert.Equal(t, AllocateByValue, *receipt.AllocationMethod)
	})

	t.Run("rejects negative components", func(t *testing.T) {
		err := receipt.SetLandedCosts(CostComponents{Freight: d("-1")}, AllocateByValue)
		require.Error(t, err)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		err := receipt.SetLandedCosts(CostComponents{}, AllocationMethod("BY_COLOR"))
		require.Error(t, err)
	})
}

func TestGoodsReceipt_MarkPosted(t *testing.T) {
	receipt := newTestReceipt(t, []LineInput{
		{ProductID: uuid.New(), Quantity: d("1"), UnitPrice: d("10")},
	})
	txID := uuid.New()

	t.Run("transitions RECEIVED to POSTED", func(t *testing.T) {
		require.NoError(t, receipt.MarkPosted(txID))
		assert.Equal(t, ReceiptStatusPosted, receipt.Status)
		require.NotNil(t, receipt.LedgerTransactionID)
		assert.Equal(t, txID, *receipt.LedgerTransactionID)
	})

	t.Run("posting twice fails", func(t *testing.T) {
		err := receipt.MarkPosted(uuid.New())
		require.Error(t, err)
	})
}

func TestGoodsReceipt_EffectiveUnitCost(t *testing.T) {
	receipt := newTestReceipt(t, []LineInput{
		{ProductID: uuid.New(), Quantity: d("10"), UnitPrice: d("10")},
	})
	line := &receipt.Lines[0]

	assert.Equal(t, "10", line.EffectiveUnitCost().String())

	line.SetLandedUnitCost(d("10.9"))
	assert.Equal(t, "10.9", line.EffectiveUnitCost().String())
}

func TestGoodsReceipt_AllocationLines(t *testing.T) {
	weight := d("2.5")
	receipt := newTestReceipt(t, []LineInput{
		{ProductID: uuid.New(), Quantity: d("10"), UnitPrice: d("10"), Weight: &weight},
		{ProductID: uuid.New(), Quantity: d("4"), UnitPrice: d("25")},
	})

	lines := receipt.AllocationLines()

	require.Len(t, lines, 2)
	assert.Equal(t, receipt.Lines[0].ProductID, lines[0].ProductID)
	require.NotNil(t, lines[0].Weight)
	assert.Nil(t, lines[1].Weight)
	assert.Equal(t, "100", lines[0].ExtendedValue().String())
}
