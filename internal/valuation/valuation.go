// internal/valuation/valuation.go
package valuation

import (
	"github.com/arclux/watchdesk-backend/internal/models"
)

type Status string

const (
	StatusPositive   Status = "positive"
	StatusNegative   Status = "negative"
	StatusBreakEven  Status = "break_even"
	StatusCommission Status = "commission"
	StatusUnknown    Status = "unknown"
)

// Valuation is derived display data. It is recomputed from the watch fields on
// every read and never stored as ground truth.
type Valuation struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
	Status  Status  `json:"status"`
}

// Variant is the ownership-tagged input to Compute. Having the two shapes as
// distinct types keeps every call site honest about which fields it is allowed
// to read, instead of branching on a string.
type Variant interface {
	compute() Valuation
}

type StockValuation struct {
	SellingPrice float64
	CostPrice    float64
}

type CommissionValuation struct {
	SellingPrice   float64
	CommissionRate float64
}

func (v StockValuation) compute() Valuation {
	if v.SellingPrice <= 0 || v.CostPrice <= 0 {
		return Valuation{Status: StatusUnknown}
	}

	amount := v.SellingPrice - v.CostPrice
	result := Valuation{
		Amount:  amount,
		Percent: amount / v.SellingPrice * 100,
	}

	switch {
	case amount > 0:
		result.Status = StatusPositive
	case amount < 0:
		result.Status = StatusNegative
	default:
		result.Status = StatusBreakEven
	}
	return result
}

func (v CommissionValuation) compute() Valuation {
	if v.SellingPrice <= 0 || v.CommissionRate <= 0 {
		return Valuation{Status: StatusUnknown}
	}

	return Valuation{
		Amount:  v.SellingPrice * v.CommissionRate / 100,
		Percent: v.CommissionRate,
		Status:  StatusCommission,
	}
}

// Compute is a pure function of its input. Safe to run on every read, every
// edit preview and during bulk report aggregation.
func Compute(v Variant) Valuation {
	return v.compute()
}

// VariantFor maps a watch record onto its ownership variant.
func VariantFor(ownership models.OwnershipType, sellingPrice, costPrice, commissionRate float64) Variant {
	if ownership == models.OwnershipTypeCommission {
		return CommissionValuation{SellingPrice: sellingPrice, CommissionRate: commissionRate}
	}
	return StockValuation{SellingPrice: sellingPrice, CostPrice: costPrice}
}

// ForWatch annotates a watch. The stock branch prefers the external calculator
// when one is configured; on any calculator failure it falls back to the local
// formula, so the caller always receives a valuation.
func ForWatch(w *models.Watch, calc Calculator) Valuation {
	variant := VariantFor(w.OwnershipType, w.SellingPrice, w.CostPrice, w.CommissionRate)

	if sv, ok := variant.(StockValuation); ok && calc != nil {
		if result, err := calc.Profit(sv.SellingPrice, sv.CostPrice); err == nil {
			return result
		}
	}

	return Compute(variant)
}
