package wheel

import (
	"fmt"
	"math"
)

type Animation struct {
	Spins  int `json:"spins" yaml:"spins"`
	Frames int `json:"frames" yaml:"frames"`
}

func DefaultAnimation() Animation {
	return Animation{Spins: 5, Frames: 60}
}

type Frame struct {
	Index     int     `json:"index"`
	Rotation  float64 `json:"rotation"`
	Highlight *int    `json:"highlight,omitempty"`
}

// Schedule is the full, precomputed spin animation. Frames is ordered and can
// be replayed any number of times; pacing belongs to the caller.
type Schedule struct {
	Winner Pick    `json:"winner"`
	Target float64 `json:"target"`
	Frames []Frame `json:"frames"`
}

// Final is the resting frame, the only one carrying the highlight.
func (s Schedule) Final() Frame {
	if len(s.Frames) == 0 {
		return Frame{}
	}
	return s.Frames[len(s.Frames)-1]
}

// EaseOutCubic maps linear progress in [0, 1] onto a decelerating curve.
func EaseOutCubic(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// TargetRotation is the rotation that brings the centre of the winner's
// segment under the pointer after the given number of full turns.
func TargetRotation(options []Option, winner, spins int) (float64, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if winner < 0 || winner >= len(options) {
		return 0, fmt.Errorf("%w: %d of %d", ErrWinnerOutOfRange, winner, len(options))
	}
	arcs := Arcs(options)
	return float64(max(spins, 0))*fullCircle + arcs[winner].Mid(), nil
}

// Plan builds the eased rotation sequence ending on the winner. The first
// frame is at rotation 0 and the last is exactly the target.
func Plan(options []Option, winner int, anim Animation) (Schedule, error) {
	target, err := TargetRotation(options, winner, anim.Spins)
	if err != nil {
		return Schedule{}, err
	}

	n := max(anim.Frames, 1)
	frames := make([]Frame, n)
	for i := range frames {
		var progress float64 = 1
		if n > 1 {
			progress = float64(i) / float64(n-1)
		}
		frames[i] = Frame{Index: i, Rotation: EaseOutCubic(progress) * target}
	}

	hl := winner
	frames[n-1].Rotation = target
	frames[n-1].Highlight = &hl

	return Schedule{
		Winner: Pick{Index: winner, Name: options[winner].Name},
		Target: target,
		Frames: frames,
	}, nil
}

// Spin selects a winner and plans its animation in one step.
func Spin(src Source, options []Option, anim Animation) (Schedule, error) {
	pick, err := Select(src, options)
	if err != nil {
		return Schedule{}, err
	}
	return Plan(options, pick.Index, anim)
}
