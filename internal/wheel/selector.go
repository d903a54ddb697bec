package wheel

import (
	"math/rand/v2"
)

// Source is the random collaborator used for sampling. Float64 must return a
// value in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource draws from the runtime's goroutine-safe generator. Handlers
// serving concurrent requests should use it instead of a shared *rand.Rand.
var GlobalSource Source = globalSource{}

// NewSource returns a deterministic PCG-backed source. It is not safe for
// concurrent use.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Select draws one option with probability proportional to its weight.
func Select(src Source, options []Option) (Pick, error) {
	if len(options) == 0 {
		return Pick{}, ErrNoOptions
	}

	dist := Distribution(options)
	r := src.Float64()

	var acc float64
	last := -1
	for i, p := range dist {
		if p <= 0 {
			continue
		}
		last = i
		acc += p
		if r < acc {
			return Pick{Index: i, Name: options[i].Name}, nil
		}
	}

	// r landed past the accumulated sum through rounding
	return Pick{Index: last, Name: options[last].Name}, nil
}
