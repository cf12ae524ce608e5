// internal/valuation/valuation_test.go
package valuation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arclux/watchdesk-backend/internal/models"
)

func TestStockValuationPositive(t *testing.T) {
	v := Compute(StockValuation{SellingPrice: 1000, CostPrice: 700})

	assert.Equal(t, 300.0, v.Amount)
	assert.Equal(t, 30.0, v.Percent)
	assert.Equal(t, StatusPositive, v.Status)
}

func TestStockValuationNegative(t *testing.T) {
	v := Compute(StockValuation{SellingPrice: 700, CostPrice: 1000})

	assert.Equal(t, -300.0, v.Amount)
	assert.Equal(t, StatusNegative, v.Status)
}

func TestStockValuationBreakEven(t *testing.T) {
	v := Compute(StockValuation{SellingPrice: 1000, CostPrice: 1000})

	assert.Equal(t, 0.0, v.Amount)
	assert.Equal(t, StatusBreakEven, v.Status)
}

func TestCommissionValuation(t *testing.T) {
	v := Compute(CommissionValuation{SellingPrice: 1000, CommissionRate: 10})

	assert.Equal(t, 100.0, v.Amount)
	assert.Equal(t, 10.0, v.Percent)
	assert.Equal(t, StatusCommission, v.Status)
}

func TestCommissionIgnoresCostPrice(t *testing.T) {
	// Commission watches never consult cost_price, whatever value it holds.
	for _, cost := range []float64{0, 500, 999999} {
		variant := VariantFor(models.OwnershipTypeCommission, 1000, cost, 10)
		v := Compute(variant)

		assert.Equal(t, 100.0, v.Amount)
		assert.Equal(t, StatusCommission, v.Status)
	}
}

func TestUnknownWhenInputsMissing(t *testing.T) {
	cases := []Variant{
		StockValuation{SellingPrice: 0, CostPrice: 700},
		StockValuation{SellingPrice: 1000, CostPrice: 0},
		CommissionValuation{SellingPrice: 0, CommissionRate: 10},
		CommissionValuation{SellingPrice: 1000, CommissionRate: 0},
	}

	for _, c := range cases {
		v := Compute(c)
		assert.Equal(t, 0.0, v.Amount)
		assert.Equal(t, 0.0, v.Percent)
		assert.Equal(t, StatusUnknown, v.Status)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	variant := StockValuation{SellingPrice: 1000, CostPrice: 700}

	first := Compute(variant)
	second := Compute(variant)
	assert.Equal(t, first, second)
}

type failingCalculator struct{}

func (failingCalculator) Profit(sellingPrice, costPrice float64) (Valuation, error) {
	return Valuation{}, errors.New("calculation service down")
}

type fixedCalculator struct {
	result Valuation
}

func (c fixedCalculator) Profit(sellingPrice, costPrice float64) (Valuation, error) {
	return c.result, nil
}

func TestForWatchFallsBackWhenCalculatorFails(t *testing.T) {
	watch := &models.Watch{
		OwnershipType: models.OwnershipTypeStock,
		SellingPrice:  1000,
		CostPrice:     700,
	}

	v := ForWatch(watch, failingCalculator{})

	// The local formula must answer; a valuation is never omitted.
	assert.Equal(t, 300.0, v.Amount)
	assert.Equal(t, StatusPositive, v.Status)
}

func TestForWatchPrefersCalculatorForStock(t *testing.T) {
	watch := &models.Watch{
		OwnershipType: models.OwnershipTypeStock,
		SellingPrice:  1000,
		CostPrice:     700,
	}
	external := Valuation{Amount: 299.95, Percent: 29.99, Status: StatusPositive}

	v := ForWatch(watch, fixedCalculator{result: external})
	assert.Equal(t, external, v)
}

func TestForWatchNeverCallsCalculatorForCommission(t *testing.T) {
	watch := &models.Watch{
		OwnershipType:  models.OwnershipTypeCommission,
		SellingPrice:   1000,
		CommissionRate: 10,
	}

	v := ForWatch(watch, fixedCalculator{result: Valuation{Amount: -1}})

	assert.Equal(t, 100.0, v.Amount)
	assert.Equal(t, StatusCommission, v.Status)
}
