package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

func TestTrafficMixWeek(t *testing.T) {
	mix := TrafficMix(window.Week)
	require.Len(t, mix, 3)
	assert.Equal(t, "Organic", mix[0].Name)
	assert.Equal(t, 45, mix[0].Value)
	assert.Equal(t, "Paid", mix[1].Name)
	assert.Equal(t, 30, mix[1].Value)
	assert.Equal(t, "Direct", mix[2].Name)
	assert.Equal(t, 25, mix[2].Value)
}

func TestTrafficMixDeterministic(t *testing.T) {
	assert.Equal(t, TrafficMix(window.Quarter), TrafficMix(window.Quarter))
}

func TestTrafficMixUnknownFallsBack(t *testing.T) {
	assert.Equal(t, TrafficMix(window.Month), TrafficMix(window.Token("2y")))
}

// The table is shipped verbatim, without renormalization; this pins the
// current rows to a 100 total so an edit that breaks it gets noticed.
func TestTrafficMixSharesTotal(t *testing.T) {
	for _, tok := range window.All {
		sum := 0
		for _, s := range TrafficMix(tok) {
			sum += s.Value
		}
		assert.Equal(t, 100, sum, "token %q", tok)
	}
}
