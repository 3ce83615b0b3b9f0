package generate

import (
	"fmt"

	"github.com/karthik1105235/admybrand-dashboard/internal/models"
	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

var trafficNames = [3]string{"Organic", "Paid", "Direct"}

// Per-window source shares. The tuples happen to total 100 but nothing
// renormalizes them; a test pins the sum so table edits get caught.
var trafficShares = map[window.Token][3]int{
	window.Week:     {45, 30, 25},
	window.Month:    {40, 35, 25},
	window.Quarter:  {35, 40, 25},
	window.HalfYear: {30, 45, 25},
}

func init() {
	for _, t := range window.All {
		if _, ok := trafficShares[t]; !ok {
			panic(fmt.Sprintf("generate: no traffic shares for token %q", t))
		}
	}
}

// TrafficMix is a pure table lookup; unknown tokens get the default
// window's tuple.
func TrafficMix(t window.Token) []models.TrafficShare {
	vals, ok := trafficShares[t]
	if !ok {
		vals = trafficShares[window.Default]
	}
	out := make([]models.TrafficShare, len(trafficNames))
	for i, name := range trafficNames {
		out[i] = models.TrafficShare{Name: name, Value: vals[i]}
	}
	return out
}
