package partner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

func confirmedOrder(t *testing.T) *PurchaseOrder {
	t.Helper()

	tenantID := uuid.New()
	order, err := NewPurchaseOrder(tenantID, "PO-2026-001", uuid.New(), valueobject.UGX, time.Now())
	require.NoError(t, err)

	_, err = order.AddLine(uuid.New(), "Steel pipes", decimal.NewFromInt(100), decimal.NewFromInt(50))
	require.NoError(t, err)
	_, err = order.AddLine(uuid.New(), "Copper wire", decimal.NewFromInt(40), decimal.NewFromInt(25))
	require.NoError(t, err)

	require.NoError(t, order.Confirm())
	return order
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates draft order", func(t *testing.T) {
		order, err := NewPurchaseOrder(uuid.New(), "PO-001", uuid.New(), valueobject.UGX, time.Now())
		require.NoError(t, err)

		assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
		assert.True(t, order.TotalAmount.IsZero())
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := NewPurchaseOrder(uuid.New(), "", uuid.New(), valueobject.UGX, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := NewPurchaseOrder(uuid.New(), "PO-001", uuid.New(), valueobject.Currency("XXX"), time.Now())
		assert.Error(t, err)
	})
}

func TestPurchaseOrderLines(t *testing.T) {
	t.Run("recalculates total on add", func(t *testing.T) {
		order, err := NewPurchaseOrder(uuid.New(), "PO-001", uuid.New(), valueobject.USD, time.Now())
		require.NoError(t, err)

		_, err = order.AddLine(uuid.New(), "Item A", decimal.NewFromInt(10), decimal.NewFromFloat(12.5))
		require.NoError(t, err)
		_, err = order.AddLine(uuid.New(), "Item B", decimal.NewFromInt(3), decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(425)))
	})

	t.Run("rejects lines after confirm", func(t *testing.T) {
		order := confirmedOrder(t)
		_, err := order.AddLine(uuid.New(), "Late item", decimal.NewFromInt(1), decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order, _ := NewPurchaseOrder(uuid.New(), "PO-001", uuid.New(), valueobject.UGX, time.Now())
		_, err := order.AddLine(uuid.New(), "Item", decimal.Zero, decimal.NewFromInt(5))
		assert.Error(t, err)
	})
}

func TestPurchaseOrderApplyReceipt(t *testing.T) {
	t.Run("partial receipt sets PARTIALLY_RECEIVED", func(t *testing.T) {
		order := confirmedOrder(t)
		line := &order.Lines[0]

		err := order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{
			line.ID: decimal.NewFromInt(60),
		})
		require.NoError(t, err)

		assert.Equal(t, PurchaseOrderStatusPartiallyReceived, order.Status)
		assert.True(t, line.ReceivedQuantity.Equal(decimal.NewFromInt(60)))
		assert.True(t, line.RemainingQuantity().Equal(decimal.NewFromInt(40)))
	})

	t.Run("full receipt sets RECEIVED", func(t *testing.T) {
		order := confirmedOrder(t)

		err := order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{
			order.Lines[0].ID: decimal.NewFromInt(100),
			order.Lines[1].ID: decimal.NewFromInt(40),
		})
		require.NoError(t, err)

		assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
	})

	t.Run("accumulates across receipts", func(t *testing.T) {
		order := confirmedOrder(t)
		lineID := order.Lines[0].ID
		otherID := order.Lines[1].ID

		require.NoError(t, order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{lineID: decimal.NewFromInt(70)}))
		require.NoError(t, order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{
			lineID:  decimal.NewFromInt(30),
			otherID: decimal.NewFromInt(40),
		}))

		assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
	})

	t.Run("rejects over-receipt", func(t *testing.T) {
		order := confirmedOrder(t)
		err := order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{
			order.Lines[0].ID: decimal.NewFromInt(101),
		})
		assert.Error(t, err)
	})

	t.Run("rejects receipt on draft order", func(t *testing.T) {
		order, _ := NewPurchaseOrder(uuid.New(), "PO-001", uuid.New(), valueobject.UGX, time.Now())
		err := order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{uuid.New(): decimal.NewFromInt(1)})
		assert.Error(t, err)
	})

	t.Run("rejects unknown line", func(t *testing.T) {
		order := confirmedOrder(t)
		err := order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{uuid.New(): decimal.NewFromInt(1)})
		assert.Error(t, err)
	})
}

func TestPurchaseOrderCancel(t *testing.T) {
	t.Run("cancels confirmed order with no receipts", func(t *testing.T) {
		order := confirmedOrder(t)
		require.NoError(t, order.Cancel("supplier out of stock"))

		assert.True(t, order.IsCancelled())
		assert.NotNil(t, order.CancelledAt)
	})

	t.Run("rejects cancel after receiving", func(t *testing.T) {
		order := confirmedOrder(t)
		require.NoError(t, order.ApplyReceipt(map[uuid.UUID]decimal.Decimal{
			order.Lines[0].ID: decimal.NewFromInt(10),
		}))

		err := order.Cancel("changed mind")
		assert.Error(t, err)
	})
}
