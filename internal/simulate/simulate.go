// Package simulate runs the selector many times and measures how well the
// observed frequencies fit the configured weights.
package simulate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

var ErrBadRuns = errors.New("number of runs must be positive")

const MaxRuns = 10_000_000

type Row struct {
	Index    int     `json:"index"`
	Name     string  `json:"name"`
	Weight   int     `json:"weight"`
	Count    int     `json:"count"`
	Expected float64 `json:"expected"`
	Observed float64 `json:"observed"`
}

type Report struct {
	Runs       int     `json:"runs"`
	Rows       []Row   `json:"rows"`
	ChiSquared float64 `json:"chi_squared"`
	DF         int     `json:"df"`
	PValue     float64 `json:"p_value"`
}

// Fits reports whether the sample is consistent with the weights at the given
// significance level.
func (r Report) Fits(alpha float64) bool {
	return r.PValue >= alpha
}

// Run draws n winners from src. onProgress, when set, is called with the
// number of completed draws at most every 1% of the run and once at the end.
func Run(src wheel.Source, options []wheel.Option, n int, onProgress func(done int)) (Report, error) {
	if len(options) == 0 {
		return Report{}, wheel.ErrNoOptions
	}
	if n <= 0 || n > MaxRuns {
		return Report{}, fmt.Errorf("%w: %d (max %d)", ErrBadRuns, n, MaxRuns)
	}

	counts := make([]int, len(options))
	step := max(n/100, 1)
	for i := 0; i < n; i++ {
		p, err := wheel.Select(src, options)
		if err != nil {
			return Report{}, err
		}
		counts[p.Index]++
		if onProgress != nil && (i+1)%step == 0 {
			onProgress(i + 1)
		}
	}
	if onProgress != nil && n%step != 0 {
		onProgress(n)
	}

	dist := wheel.Distribution(options)
	rep := Report{Runs: n, Rows: make([]Row, len(options))}

	// zero-probability options would divide by zero in the statistic; they
	// can never be drawn, so leaving them out loses nothing
	var obs, exp []float64
	for i, o := range options {
		rep.Rows[i] = Row{
			Index:    i,
			Name:     o.Name,
			Weight:   o.Weight,
			Count:    counts[i],
			Expected: dist[i],
			Observed: float64(counts[i]) / float64(n),
		}
		if dist[i] > 0 {
			obs = append(obs, float64(counts[i]))
			exp = append(exp, dist[i]*float64(n))
		}
	}

	rep.DF = len(obs) - 1
	if rep.DF < 1 {
		rep.PValue = 1
		return rep, nil
	}
	rep.ChiSquared = stat.ChiSquare(obs, exp)
	rep.PValue = distuv.ChiSquared{K: float64(rep.DF)}.Survival(rep.ChiSquared)
	return rep, nil
}
