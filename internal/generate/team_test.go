package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

func TestTeamPerformanceShape(t *testing.T) {
	g := New(nil)
	wantOrder := []string{"Marketing", "Sales", "Support", "Development"}
	for _, tok := range append(window.All, window.Token("bogus")) {
		rows := g.TeamPerformance(tok)
		require.Len(t, rows, 4, "token %q", tok)
		for i, r := range rows {
			assert.Equal(t, wantOrder[i], r.Name)
			assert.Equal(t, 2500, r.Target)
			assert.GreaterOrEqual(t, r.Performance, 2000)
		}
	}
}

func TestTeamPerformanceMultiplier(t *testing.T) {
	// zero draw removes the random span entirely, multiplier and all
	g := New(fixedSource(0))
	for _, r := range g.TeamPerformance(window.Week) {
		assert.Equal(t, 2000, r.Performance)
	}

	// a full draw exposes the per-team multiplier: 2000 + 3000*mult
	g = New(fixedSource(0.9999999))
	rows := g.TeamPerformance(window.HalfYear)
	mult := []float64{1.3, 1.1, 0.9, 1.2}
	for i, r := range rows {
		want := 2000 + int(3000*mult[i])
		assert.InDelta(t, want, r.Performance, 1, "team %s", r.Name)
	}
}
