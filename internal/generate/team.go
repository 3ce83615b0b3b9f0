package generate

import (
	"fmt"

	"github.com/karthik1105235/admybrand-dashboard/internal/models"
	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

const teamTarget = 2500

var teamNames = [4]string{"Marketing", "Sales", "Support", "Development"}

// Per-window multiplier applied to each team's random span, indexed in
// teamNames order.
var teamMultipliers = map[window.Token][4]float64{
	window.Week:     {1, 0.8, 1.2, 0.9},
	window.Month:    {1.1, 0.9, 1.1, 1},
	window.Quarter:  {1.2, 1, 1, 1.1},
	window.HalfYear: {1.3, 1.1, 0.9, 1.2},
}

func init() {
	for _, t := range window.All {
		if _, ok := teamMultipliers[t]; !ok {
			panic(fmt.Sprintf("generate: no team multipliers for token %q", t))
		}
	}
}

// TeamPerformance returns one row per team in fixed order. The target is
// the same for every team and window.
func (g *Generator) TeamPerformance(t window.Token) []models.TeamMetric {
	mult, ok := teamMultipliers[t]
	if !ok {
		mult = teamMultipliers[window.Default]
	}
	out := make([]models.TeamMetric, len(teamNames))
	for i, name := range teamNames {
		out[i] = models.TeamMetric{
			Name:        name,
			Performance: round(2000 + g.src.Float64()*3000*mult[i]),
			Target:      teamTarget,
		}
	}
	return out
}
