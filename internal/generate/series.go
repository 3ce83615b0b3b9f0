package generate

import (
	"fmt"
	"math"
	"time"

	"github.com/karthik1105235/admybrand-dashboard/internal/models"
	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

type Generator struct {
	src Source
	now func() time.Time
}

func New(src Source) *Generator {
	if src == nil {
		src = defaultSource{}
	}
	return &Generator{src: src, now: time.Now}
}

// NewWithClock pins the wall clock; used by tests that assert on dates.
func NewWithClock(src Source, now func() time.Time) *Generator {
	g := New(src)
	g.now = now
	return g
}

// Series produces spec.Points() fresh records, oldest first, today last.
// Each point is base draw + a sine term keyed on the day offset; the sine
// term is not clamped, matching the source data the charts were built on.
func (g *Generator) Series(spec window.Spec) []models.MetricRecord {
	now := g.now()
	out := make([]models.MetricRecord, 0, spec.Points())
	for i := spec.Days; i >= 0; i -= spec.Interval {
		d := now.AddDate(0, 0, -i)

		baseRevenue := 1000 + g.src.Float64()*2000
		baseVisitors := 500 + g.src.Float64()*1000
		baseConversions := 50 + g.src.Float64()*200

		out = append(out, models.MetricRecord{
			Date:        d.Format("2006-01-02"),
			Label:       d.Format("Jan 2"),
			Revenue:     round(baseRevenue + math.Sin(float64(i)*0.1)*500),
			Visitors:    round(baseVisitors + math.Sin(float64(i)*0.15)*300),
			Conversions: round(baseConversions + math.Sin(float64(i)*0.2)*100),
			CTR:         fmt.Sprintf("%.2f", 2+g.src.Float64()*3),
			BounceRate:  fmt.Sprintf("%.1f", 30+g.src.Float64()*20),
		})
	}
	return out
}

func round(f float64) int { return int(math.Round(f)) }
