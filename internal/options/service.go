// Package options owns the wheel's option list. All reads and writes go
// through a Service, which serializes them and persists the whole list after
// each change.
package options

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Wheel/internal/hermes"
	"github.com/MikeSquared-Agency/Wheel/internal/metrics"
	"github.com/MikeSquared-Agency/Wheel/internal/store"
	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

var (
	ErrIndexOutOfRange = errors.New("option index out of range")
	ErrInvalidOption   = errors.New("invalid option")
)

const (
	MaxNameLength = 100
	MinWeight     = 1
	MaxWeight     = 100
)

// Input is an option as entered by an admin.
type Input struct {
	Name   string `json:"name" yaml:"name" validate:"required,max=100"`
	Weight int    `json:"weight" yaml:"weight" validate:"min=1,max=100"`
}

type Service struct {
	id       string
	mu       sync.Mutex
	store    store.Store
	hermes   hermes.Client
	validate *validator.Validate
	logger   *slog.Logger
	options  []wheel.Option
}

// NewService loads the persisted list. h may be nil.
func NewService(ctx context.Context, s store.Store, h hermes.Client, logger *slog.Logger) (*Service, error) {
	list, err := s.LoadOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	svc := &Service{
		id:       uuid.NewString(),
		store:    s,
		hermes:   h,
		validate: validator.New(),
		logger:   logger,
		options:  list,
	}
	svc.observe()
	return svc, nil
}

// List returns a copy of the current list.
func (s *Service) List() []wheel.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.options)
}

func (s *Service) Add(ctx context.Context, in Input) ([]wheel.Option, error) {
	o, err := s.check(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(clone(s.options), o)
	idx := len(next) - 1
	return s.commit(ctx, "add", &idx, next)
}

func (s *Service) Update(ctx context.Context, index int, in Input) ([]wheel.Option, error) {
	o, err := s.check(in)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.options) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	next := clone(s.options)
	next[index] = o
	return s.commit(ctx, "update", &index, next)
}

func (s *Service) Delete(ctx context.Context, index int) ([]wheel.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.options) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	next := make([]wheel.Option, 0, len(s.options)-1)
	next = append(next, s.options[:index]...)
	next = append(next, s.options[index+1:]...)
	return s.commit(ctx, "delete", &index, next)
}

// Replace swaps in a whole new list. Every entry is validated before anything
// is written.
func (s *Service) Replace(ctx context.Context, inputs []Input) ([]wheel.Option, error) {
	next := make([]wheel.Option, 0, len(inputs))
	for i, in := range inputs {
		o, err := s.check(in)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		next = append(next, o)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, "replace", nil, next)
}

func (s *Service) check(in Input) (wheel.Option, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return wheel.Option{}, fmt.Errorf("%w: %s", ErrInvalidOption, describe(verrs))
		}
		return wheel.Option{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return wheel.Option{Name: in.Name, Weight: in.Weight}, nil
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.ToLower(e.Field())
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "max":
			if field == "name" {
				msgs = append(msgs, fmt.Sprintf("name must be at most %d characters", MaxNameLength))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
			}
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, ", ")
}

// commit persists next and only then makes it current. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, action string, index *int, next []wheel.Option) ([]wheel.Option, error) {
	if err := s.store.SaveOptions(ctx, next); err != nil {
		return nil, fmt.Errorf("save options: %w", err)
	}
	s.options = next
	s.observe()

	s.logger.Info("options updated", "action", action, "count", len(next))
	hermes.Emit(s.hermes, s.logger, hermes.SubjectOptionsUpdated, hermes.OptionsUpdatedEvent{
		Origin:    s.id,
		Action:    action,
		Index:     index,
		Count:     len(next),
		Total:     wheel.TotalWeight(next),
		Timestamp: time.Now().UTC(),
	})
	return clone(next), nil
}

// Watch subscribes to list updates published by other instances sharing the
// same store and reloads the list when one arrives. It is a no-op without
// hermes.
func (s *Service) Watch() error {
	if s.hermes == nil {
		return nil
	}
	return s.hermes.Subscribe(hermes.SubjectOptionsUpdated, s.onRemoteUpdate)
}

func (s *Service) onRemoteUpdate(_ string, data []byte) {
	var ev hermes.OptionsUpdatedEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		s.logger.Warn("bad options.updated payload", "error", err)
		return
	}
	if ev.Origin == s.id {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Reload(ctx); err != nil {
		s.logger.Error("reload options", "origin", ev.Origin, "error", err)
	}
}

// Reload replaces the in-memory list with the stored one.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.store.LoadOptions(ctx)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	s.options = list
	s.observe()
	s.logger.Info("options reloaded", "count", len(list))
	return nil
}

func (s *Service) observe() {
	metrics.Options.Set(float64(len(s.options)))
	metrics.TotalWeight.Set(float64(wheel.TotalWeight(s.options)))
}

func clone(options []wheel.Option) []wheel.Option {
	out := make([]wheel.Option, len(options))
	copy(out, options)
	return out
}
