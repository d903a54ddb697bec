// Package session holds the per-visitor UI state of the wheel: whether the
// visitor is logged in as admin, whether a spin is in flight and the last
// result. Transitions are pure functions returning a new State; the caller
// decides where to keep it.
package session

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

var (
	ErrBadPassword    = errors.New("incorrect password")
	ErrLoginDisabled  = errors.New("admin login is not configured")
	ErrSpinInProgress = errors.New("a spin is already in progress")
)

type State struct {
	ID            string      `json:"id"`
	Authenticated bool        `json:"authenticated"`
	Result        *wheel.Pick `json:"result,omitempty"`
	SpinAngle     float64     `json:"spin_angle"`
	SpinningUntil time.Time   `json:"spinning_until"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func New(now time.Time) State {
	return State{ID: uuid.NewString(), UpdatedAt: now}
}

func (s State) Spinning(now time.Time) bool {
	return now.Before(s.SpinningUntil)
}

// Login authenticates the session when password matches expected. An empty
// expected password disables login entirely.
func Login(s State, password, expected string, now time.Time) (State, error) {
	if expected == "" {
		return s, ErrLoginDisabled
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(expected)) != 1 {
		return s, ErrBadPassword
	}
	s.Authenticated = true
	s.UpdatedAt = now
	return s, nil
}

func Logout(s State, now time.Time) State {
	s.Authenticated = false
	s.UpdatedAt = now
	return s
}

// StartSpin draws a winner and plans its animation. The returned state holds
// the result immediately and stays spinning until every frame has been shown
// at frameDelay, or until FinishSpin.
func StartSpin(s State, options []wheel.Option, src wheel.Source, anim wheel.Animation, frameDelay time.Duration, now time.Time) (State, wheel.Schedule, error) {
	if s.Spinning(now) {
		return s, wheel.Schedule{}, ErrSpinInProgress
	}
	sched, err := wheel.Spin(src, options, anim)
	if err != nil {
		return s, wheel.Schedule{}, err
	}

	winner := sched.Winner
	s.Result = &winner
	s.SpinAngle = sched.Target
	s.SpinningUntil = now.Add(time.Duration(len(sched.Frames)) * frameDelay)
	s.UpdatedAt = now
	return s, sched, nil
}

// FinishSpin ends the animation early, keeping the result.
func FinishSpin(s State, now time.Time) State {
	s.SpinningUntil = time.Time{}
	s.UpdatedAt = now
	return s
}

// ClearResult forgets the last result so the visitor can spin again.
func ClearResult(s State, now time.Time) State {
	s.Result = nil
	s.UpdatedAt = now
	return s
}
