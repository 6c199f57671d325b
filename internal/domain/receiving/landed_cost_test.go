package receiving

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestAllocateLandedCosts_ByValue(t *testing.T) {
	lines := []AllocationLine{
		{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("10")}, // extended 100
		{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("20")}, // extended 200
	}

	results, err := AllocateLandedCosts(CostComponents{Freight: d("90")}, lines, AllocateByValue)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "30", results[0].AllocatedCost.String())
	assert.Equal(t, "60", results[1].AllocatedCost.String())
	// 30 over 10 units adds 3.00 per unit; 60 over 10 adds 6.00
	assert.Equal(t, "13", results[0].NewUnitCost.String())
	assert.Equal(t, "26", results[1].NewUnitCost.String())
}

func TestAllocateLandedCosts_ByQuantity(t *testing.T) {
	lines := []AllocationLine{
		{ProductID: uuid.New(), Quantity: d("30"), UnitCost: d("5")},
		{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("50")},
	}

	results, err := AllocateLandedCosts(CostComponents{CustomsDuty: d("100")}, lines, AllocateByQuantity)

	require.NoError(t, err)
	assert.Equal(t, "75", results[0].AllocatedCost.String())
	assert.Equal(t, "25", results[1].AllocatedCost.String())
}

func TestAllocateLandedCosts_ByWeight(t *testing.T) {
	t.Run("allocates by total line weight", func(t *testing.T) {
		lines := []AllocationLine{
			{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("1"), Weight: dp("2")},  // 20 kg
			{ProductID: uuid.New(), Quantity: d("5"), UnitCost: d("1"), Weight: dp("16")}, // 80 kg
		}

		results, err := AllocateLandedCosts(CostComponents{Freight: d("50")}, lines, AllocateByWeight)

		require.NoError(t, err)
		assert.Equal(t, "10", results[0].AllocatedCost.String())
		assert.Equal(t, "40", results[1].AllocatedCost.String())
	})

	t.Run("line missing weight gets no allocation", func(t *testing.T) {
		lines := []AllocationLine{
			{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("1"), Weight: dp("5")},
			{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("7")}, // services, no weight
		}

		results, err := AllocateLandedCosts(CostComponents{Freight: d("50")}, lines, AllocateByWeight)

		require.NoError(t, err)
		assert.Equal(t, "50", results[0].AllocatedCost.String())
		assert.Equal(t, "0", results[1].AllocatedCost.String())
		assert.Equal(t, "7", results[1].NewUnitCost.String())
	})

	t.Run("all lines missing weight is an error", func(t *testing.T) {
		lines := []AllocationLine{
			{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("1")},
		}
		_, err := AllocateLandedCosts(CostComponents{Freight: d("50")}, lines, AllocateByWeight)
		require.Error(t, err)
	})
}

func TestAllocateLandedCosts_ByVolume(t *testing.T) {
	lines := []AllocationLine{
		{ProductID: uuid.New(), Quantity: d("4"), UnitCost: d("100"), Volume: dp("0.25")}, // 1 m3
		{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("100"), Volume: dp("3")},    // 3 m3
	}

	results, err := AllocateLandedCosts(CostComponents{Insurance: d("40")}, lines, AllocateByVolume)

	require.NoError(t, err)
	assert.Equal(t, "10", results[0].AllocatedCost.String())
	assert.Equal(t, "30", results[1].AllocatedCost.String())
}

func TestAllocateLandedCosts_ZeroComponents(t *testing.T) {
	lines := []AllocationLine{
		{ProductID: uuid.New(), Quantity: d("10"), UnitCost: d("12.5")},
		{ProductID: uuid.New(), Quantity: d("3"), UnitCost: d("88")},
	}

	results, err := AllocateLandedCosts(CostComponents{}, lines, AllocateByValue)

	require.NoError(t, err)
	for i, r := range results {
		assert.True(t, r.AllocatedCost.IsZero())
		assert.True(t, r.NewUnitCost.Equal(lines[i].UnitCost))
	}
}

func TestAllocateLandedCosts_ResidualReconciliation(t *testing.T) {
	t.Run("residual lands on the largest basis line", func(t *testing.T) {
		// 100 split across three equal-value lines rounds to 33.33 each,
		// leaving 0.01 of residual.
		lines := []AllocationLine{
			{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("10")},
			{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("10")},
			{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("10.01")},
		}

		results, err := AllocateLandedCosts(CostComponents{Freight: d("100")}, lines, AllocateByValue)

		require.NoError(t, err)
		sum := decimal.Zero
		for _, r := range results {
			sum = sum.Add(r.AllocatedCost)
		}
		assert.Equal(t, "100", sum.String())
		// Third line has the largest extended value, so it absorbs the residual.
		assert.True(t, results[2].AllocatedCost.GreaterThan(results[0].AllocatedCost))
	})

	t.Run("allocations always sum exactly to the component total", func(t *testing.T) {
		lines := []AllocationLine{
			{ProductID: uuid.New(), Quantity: d("7"), UnitCost: d("3.17")},
			{ProductID: uuid.New(), Quantity: d("13"), UnitCost: d("9.41")},
			{ProductID: uuid.New(), Quantity: d("29"), UnitCost: d("0.73")},
		}
		components := CostComponents{Freight: d("123.45"), Insurance: d("6.78"), CustomsDuty: d("90.12"), Other: d("0.33")}

		results, err := AllocateLandedCosts(components, lines, AllocateByValue)

		require.NoError(t, err)
		sum := decimal.Zero
		for _, r := range results {
			sum = sum.Add(r.AllocatedCost)
		}
		assert.True(t, sum.Equal(components.Total()), "expected %s, got %s", components.Total(), sum)
	})
}

func TestAllocateLandedCosts_Validation(t *testing.T) {
	valid := []AllocationLine{{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("1")}}

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := AllocateLandedCosts(CostComponents{}, valid, AllocationMethod("BY_COLOR"))
		require.Error(t, err)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := AllocateLandedCosts(CostComponents{}, nil, AllocateByValue)
		require.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		lines := []AllocationLine{{ProductID: uuid.New(), Quantity: decimal.Zero, UnitCost: d("1")}}
		_, err := AllocateLandedCosts(CostComponents{}, lines, AllocateByValue)
		require.Error(t, err)
	})

	t.Run("rejects negative unit cost", func(t *testing.T) {
		lines := []AllocationLine{{ProductID: uuid.New(), Quantity: d("1"), UnitCost: d("-1")}}
		_, err := AllocateLandedCosts(CostComponents{}, lines, AllocateByValue)
		require.Error(t, err)
	})

	t.Run("rejects a negative component even when the total is positive", func(t *testing.T) {
		components := CostComponents{Freight: d("100"), Other: d("-40")}
		_, err := AllocateLandedCosts(components, valid, AllocateByValue)
		require.Error(t, err)
	})
}
