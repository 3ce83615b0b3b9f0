package pricing

import "github.com/karthik1105235/admybrand-dashboard/internal/models"

type PlanID string

const (
	Basic      PlanID = "basic"
	Pro        PlanID = "pro"
	Enterprise PlanID = "enterprise"
)

// DefaultPlan is what the calculator opens with and what unknown plan IDs
// fall back to.
const DefaultPlan = Pro

var plans = map[PlanID]models.Plan{
	Basic: {
		ID:           string(Basic),
		MonthlyPrice: 29,
		Features:     []string{"Basic Analytics", "Email Support", "5 Reports"},
	},
	Pro: {
		ID:           string(Pro),
		MonthlyPrice: 99,
		Features:     []string{"Advanced Analytics", "Priority Support", "Unlimited Reports", "Custom Dashboards"},
	},
	Enterprise: {
		ID:           string(Enterprise),
		MonthlyPrice: 299,
		Features:     []string{"Enterprise Analytics", "24/7 Support", "Custom Integrations", "White-label", "API Access"},
	},
}

var planOrder = []PlanID{Basic, Pro, Enterprise}

// Plans lists the plan table in display order.
func Plans() []models.Plan {
	out := make([]models.Plan, 0, len(planOrder))
	for _, id := range planOrder {
		out = append(out, plans[id])
	}
	return out
}

func planPrice(id PlanID) int {
	if p, ok := plans[id]; ok {
		return p.MonthlyPrice
	}
	return plans[DefaultPlan].MonthlyPrice
}

type Input struct {
	Visitors           int     `json:"visitors"`
	ConversionRatePerc float64 `json:"conversion_rate"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	Plan               PlanID  `json:"plan"`
}

// Quote projects revenue and ROI for the calculator. Pure and total: zero
// visitors quote zero revenue, they are not an error.
func Quote(in Input) models.PricingQuote {
	monthly := float64(in.Visitors) * (in.ConversionRatePerc / 100) * in.AvgOrderValue
	annual := monthly * 12
	cost := planPrice(in.Plan) * 12
	roi := (annual - float64(cost)) / float64(cost) * 100
	return models.PricingQuote{
		MonthlyRevenue: round2(monthly),
		AnnualRevenue:  round2(annual),
		PlanCostAnnual: cost,
		ROIPercent:     round2(roi),
	}
}

func round2(f float64) float64 {
	if f < 0 {
		return float64(int64(f*100-0.5)) / 100
	}
	return float64(int64(f*100+0.5)) / 100
}
