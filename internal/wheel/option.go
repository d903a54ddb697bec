// Package wheel holds the pure core of the service: weighted selection over an
// ordered option list, the wheel geometry and the spin animation schedule.
package wheel

import (
	"errors"
	"fmt"
)

var (
	ErrNoOptions        = errors.New("no options to select from")
	ErrWinnerOutOfRange = errors.New("winner index out of range")
)

// Option is one named entry on the wheel. Order in a list is the clockwise
// segment order starting at the top.
type Option struct {
	Name   string `json:"name" yaml:"name"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Pick is the result of a selection. Index is positional, so lists with
// duplicate names still resolve to the segment that was drawn.
type Pick struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func (p Pick) String() string {
	return fmt.Sprintf("%d:%s", p.Index, p.Name)
}

// effectiveWeights returns the weights used for both selection and geometry.
// A list whose weights sum to zero is treated as uniform.
func effectiveWeights(options []Option) ([]float64, float64) {
	weights := make([]float64, len(options))
	var total float64
	for i, o := range options {
		w := float64(max(o.Weight, 0))
		weights[i] = w
		total += w
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}
	return weights, total
}

// Distribution returns the normalized weights of options. The result sums to 1
// for any non-empty list, including one where every weight is zero.
func Distribution(options []Option) []float64 {
	weights, total := effectiveWeights(options)
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// TotalWeight is the raw sum of the option weights.
func TotalWeight(options []Option) int {
	var total int
	for _, o := range options {
		total += max(o.Weight, 0)
	}
	return total
}
