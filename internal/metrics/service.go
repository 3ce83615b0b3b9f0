package metrics

import (
	"strconv"

	"github.com/karthik1105235/admybrand-dashboard/internal/generate"
	"github.com/karthik1105235/admybrand-dashboard/internal/models"
	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

// Service builds the dashboard payloads for a requested range.
type Service struct {
	gen *generate.Generator
}

func NewService(gen *generate.Generator) *Service { return &Service{gen: gen} }

// Static side-panel figures; nothing generates these.
var quickStats = models.QuickStats{
	AvgSessionDuration: "4m 32s",
	PagesPerSession:    3.2,
	ConversionRate:     "2.8%",
	ROI:                "+340%",
}

// Snapshot regenerates everything a render cycle needs. Records are fresh
// per call and never shared across cycles.
func (s *Service) Snapshot(t window.Token) models.Snapshot {
	spec := window.Resolve(t)
	series := s.gen.Series(spec)
	return models.Snapshot{
		Range:      string(t),
		Days:       spec.Days,
		Interval:   spec.Interval,
		Series:     series,
		Summary:    Summarize(series),
		Traffic:    generate.TrafficMix(t),
		Teams:      s.gen.TeamPerformance(t),
		QuickStats: quickStats,
	}
}

func (s *Service) Series(t window.Token) []models.MetricRecord {
	return s.gen.Series(window.Resolve(t))
}

func (s *Service) Teams(t window.Token) []models.TeamMetric {
	return s.gen.TeamPerformance(t)
}

func (s *Service) Traffic(t window.Token) []models.TrafficShare {
	return generate.TrafficMix(t)
}

// Summarize reduces a series to display totals. Sums are exact integer
// sums; the CTR average is rounded to 2 decimals. An empty series yields
// zeros, never NaN.
func Summarize(series []models.MetricRecord) models.Summary {
	var sum models.Summary
	var ctr float64
	for _, r := range series {
		sum.TotalRevenue += r.Revenue
		sum.TotalVisitors += r.Visitors
		sum.TotalConversions += r.Conversions
		if v, err := strconv.ParseFloat(r.CTR, 64); err == nil {
			ctr += v
		}
	}
	sum.AvgCTR = round2(safeDivF(ctr, float64(len(series))))
	return sum
}

func safeDivF(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
func round2(f float64) float64 { return float64(int64(f*100+0.5)) / 100 }
