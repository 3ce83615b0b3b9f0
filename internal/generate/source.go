package generate

import "math/rand"

// Source supplies uniform draws in [0,1). The dashboard re-samples on every
// render, so production uses the shared math/rand source with no seed; tests
// substitute a fixed sequence.
type Source interface {
	Float64() float64
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
