package receiving

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared"
	"github.com/Mudegi/YourBookSuit-sub006/internal/domain/shared/valueobject"
)

// AllocationMethod selects the per-line basis used to distribute landed costs
type AllocationMethod string

const (
	AllocateByValue    AllocationMethod = "BY_VALUE"
	AllocateByQuantity AllocationMethod = "BY_QUANTITY"
	AllocateByWeight   AllocationMethod = "BY_WEIGHT"
	AllocateByVolume   AllocationMethod = "BY_VOLUME"
)

// IsValid checks if the allocation method is valid
func (m AllocationMethod) IsValid() bool {
	switch m {
	case AllocateByValue, AllocateByQuantity, AllocateByWeight, AllocateByVolume:
		return true
	}
	return false
}

// String returns the string representation of AllocationMethod
func (m AllocationMethod) String() string {
	return string(m)
}

// CostComponents are the indirect costs incurred to land goods at the
// warehouse, to be spread across the receipt lines.
type CostComponents struct {
	Freight     decimal.Decimal
	Insurance   decimal.Decimal
	CustomsDuty decimal.Decimal
	Other       decimal.Decimal
}

// Total sums all components
func (c CostComponents) Total() decimal.Decimal {
	return c.Freight.Add(c.Insurance).Add(c.CustomsDuty).Add(c.Other)
}

// IsZero returns true if every component is zero
func (c CostComponents) IsZero() bool {
	return c.Total().IsZero()
}

// HasNegative returns true if any single component is negative. Components
// are validated individually so a negative one cannot hide behind a
// positive total.
func (c CostComponents) HasNegative() bool {
	return c.Freight.IsNegative() || c.Insurance.IsNegative() ||
		c.CustomsDuty.IsNegative() || c.Other.IsNegative()
}

// AllocationLine is one receipt line as seen by the allocator. Weight and
// volume are optional; not all goods carry physical dimensions.
type AllocationLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Weight    *decimal.Decimal
	Volume    *decimal.Decimal
}

// ExtendedValue is quantity * unit cost
func (l AllocationLine) ExtendedValue() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}

// basis returns the line's proportional key for the method. Lines missing the
// weight/volume attribute get a zero basis and therefore no allocation.
func (l AllocationLine) basis(method AllocationMethod) decimal.Decimal {
	switch method {
	case AllocateByValue:
		return l.ExtendedValue()
	case AllocateByQuantity:
		return l.Quantity
	case AllocateByWeight:
		if l.Weight == nil {
			return decimal.Zero
		}
		return l.Weight.Mul(l.Quantity)
	case AllocateByVolume:
		if l.Volume == nil {
			return decimal.Zero
		}
		return l.Volume.Mul(l.Quantity)
	}
	return decimal.Zero
}

// AllocationResult is the computed cost adjustment for one line
type AllocationResult struct {
	ProductID     uuid.UUID
	AllocatedCost decimal.Decimal
	NewUnitCost   decimal.Decimal
}

// AllocateLandedCosts distributes the cost components across the lines in
// proportion to each line's basis and returns the per-line adjustment and new
// unit cost. It is a pure computation; applying the results to inventory and
// receipt lines is the caller's job.
//
// The allocated amounts are rounded to the monetary precision; any residual
// against the component total is assigned to the line with the largest basis,
// so the allocations always reconcile exactly.
func AllocateLandedCosts(components CostComponents, lines []AllocationLine, method AllocationMethod) ([]AllocationResult, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_METHOD", "Unknown allocation method")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_LINES", "At least one line is required for allocation")
	}
	if components.HasNegative() {
		return nil, shared.NewDomainError("INVALID_COMPONENTS", "Cost components cannot be negative")
	}
	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Allocation line quantity must be positive")
		}
		if l.UnitCost.IsNegative() {
			return nil, shared.NewDomainError("INVALID_COST", "Allocation line unit cost cannot be negative")
		}
	}

	results := make([]AllocationResult, len(lines))

	// Zero components: unit costs pass through unchanged. Explicit
	// short-circuit rather than a division-by-zero hazard below.
	if components.IsZero() {
		for i, l := range lines {
			results[i] = AllocationResult{
				ProductID:     l.ProductID,
				AllocatedCost: decimal.Zero,
				NewUnitCost:   l.UnitCost,
			}
		}
		return results, nil
	}

	totalCost := components.Total()

	totalBasis := decimal.Zero
	bases := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		bases[i] = l.basis(method)
		totalBasis = totalBasis.Add(bases[i])
	}
	if totalBasis.IsZero() {
		return nil, shared.NewDomainError("ZERO_BASIS", "No line carries a basis for the chosen allocation method")
	}

	allocatedSum := decimal.Zero
	largestBasisIdx := 0
	for i, l := range lines {
		allocated := totalCost.Mul(bases[i]).Div(totalBasis).Round(valueobject.MoneyPlaces)
		allocatedSum = allocatedSum.Add(allocated)
		if bases[i].GreaterThan(bases[largestBasisIdx]) {
			largestBasisIdx = i
		}
		results[i] = AllocationResult{
			ProductID:     l.ProductID,
			AllocatedCost: allocated,
		}
	}

	// Assign the rounding residual to the largest-basis line so the
	// allocations sum exactly to the component total.
	residual := totalCost.Sub(allocatedSum)
	if !residual.IsZero() {
		results[largestBasisIdx].AllocatedCost = results[largestBasisIdx].AllocatedCost.Add(residual)
	}

	for i, l := range lines {
		perUnit := results[i].AllocatedCost.Div(l.Quantity)
		results[i].NewUnitCost = l.UnitCost.Add(perUnit).Round(valueobject.CostPlaces)
	}

	return results, nil
}
