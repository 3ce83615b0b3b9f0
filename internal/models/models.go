package models

// MetricRecord is one sampled point of the synthetic series. Rates are
// pre-formatted strings because the charts print them verbatim.
type MetricRecord struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Revenue     int    `json:"revenue"`
	Visitors    int    `json:"visitors"`
	Conversions int    `json:"conversions"`
	CTR         string `json:"ctr"`
	BounceRate  string `json:"bounce_rate"`
}

type TrafficShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TeamMetric struct {
	Name        string `json:"name"`
	Performance int    `json:"performance"`
	Target      int    `json:"target"`
}

type Summary struct {
	TotalRevenue     int     `json:"total_revenue"`
	TotalVisitors    int     `json:"total_visitors"`
	TotalConversions int     `json:"total_conversions"`
	AvgCTR           float64 `json:"avg_ctr"`
}

// QuickStats are the static figures on the dashboard's side panel.
type QuickStats struct {
	AvgSessionDuration string  `json:"avg_session_duration"`
	PagesPerSession    float64 `json:"pages_per_session"`
	ConversionRate     string  `json:"conversion_rate"`
	ROI                string  `json:"roi"`
}

type Snapshot struct {
	Range      string         `json:"range"`
	Days       int            `json:"days"`
	Interval   int            `json:"interval"`
	Series     []MetricRecord `json:"series"`
	Summary    Summary        `json:"summary"`
	Traffic    []TrafficShare `json:"traffic"`
	Teams      []TeamMetric   `json:"teams"`
	QuickStats QuickStats     `json:"quick_stats"`
}

type PricingQuote struct {
	MonthlyRevenue float64 `json:"monthly_revenue"`
	AnnualRevenue  float64 `json:"annual_revenue"`
	PlanCostAnnual int     `json:"plan_cost_annual"`
	ROIPercent     float64 `json:"roi_percent"`
}

type Plan struct {
	ID           string   `json:"id"`
	MonthlyPrice int      `json:"monthly_price"`
	Features     []string `json:"features"`
}

type Resource struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Type     string `json:"type"`
	ReadTime string `json:"read_time"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Featured bool   `json:"featured,omitempty"`
}

type ResourceCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}
