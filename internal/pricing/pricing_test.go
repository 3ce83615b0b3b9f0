package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteProExample(t *testing.T) {
	q := Quote(Input{
		Visitors:           1000,
		ConversionRatePerc: 2.5,
		AvgOrderValue:      100,
		Plan:               Pro,
	})
	assert.Equal(t, 2500.0, q.MonthlyRevenue)
	assert.Equal(t, 30000.0, q.AnnualRevenue)
	assert.Equal(t, 1188, q.PlanCostAnnual)
	assert.Equal(t, 2425.25, q.ROIPercent)
}

func TestQuoteZeroVisitors(t *testing.T) {
	q := Quote(Input{ConversionRatePerc: 2.5, AvgOrderValue: 100, Plan: Basic})
	assert.Equal(t, 0.0, q.MonthlyRevenue)
	assert.Equal(t, 0.0, q.AnnualRevenue)
	assert.Equal(t, 29*12, q.PlanCostAnnual)
	// all cost, no revenue
	assert.Equal(t, -100.0, q.ROIPercent)
}

func TestQuoteUnknownPlanFallsBack(t *testing.T) {
	got := Quote(Input{Visitors: 1000, ConversionRatePerc: 2.5, AvgOrderValue: 100, Plan: PlanID("gold")})
	want := Quote(Input{Visitors: 1000, ConversionRatePerc: 2.5, AvgOrderValue: 100, Plan: DefaultPlan})
	assert.Equal(t, want, got)
}

func TestPlansTable(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, 3)
	assert.Equal(t, "basic", plans[0].ID)
	assert.Equal(t, 29, plans[0].MonthlyPrice)
	assert.Equal(t, "pro", plans[1].ID)
	assert.Equal(t, 99, plans[1].MonthlyPrice)
	assert.Equal(t, "enterprise", plans[2].ID)
	assert.Equal(t, 299, plans[2].MonthlyPrice)
	for _, p := range plans {
		assert.NotEmpty(t, p.Features)
	}
}
