package service

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// UseCaseEvent describes one finished service call. A call refused with a
// hint is a success carrying Fields["hint"].
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives use-case events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops every event.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs one slog text record per use case to w.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &logUseCaseObserver{logger: slog.New(h).With("component", "lineup")}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	// Sorted so records for the same use case line up.
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, k, event.Fields[k])
	}

	if event.Err != nil {
		o.logger.ErrorContext(ctx, "service_use_case", append(attrs, "error", event.Err.Error())...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

// multiObserver fans one event out to several observers.
type multiObserver []UseCaseObserver

func (m multiObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		obs.ObserveUseCase(ctx, event)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	var live multiObserver
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}
