package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/alexanderramin/lineup/internal/importer"
)

// ImportError collects every problem found in a snapshot. It unwraps to
// each problem, so errors.Is(err, importer.ErrInvalidSnapshot) holds.
type ImportError struct {
	Problems []error
}

func (e *ImportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p.Error())
	}
	return b.String()
}

func (e *ImportError) Unwrap() []error {
	return e.Problems
}

// decodePlan parses, validates and converts a snapshot.
func decodePlan(data []byte) (domain.Plan, error) {
	snap, err := importer.Parse(data)
	if err != nil {
		return domain.Plan{}, &ImportError{Problems: []error{err}}
	}
	if errs := importer.Validate(snap); len(errs) > 0 {
		return domain.Plan{}, &ImportError{Problems: errs}
	}
	p, err := importer.Convert(snap)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("converting snapshot: %w", err)
	}
	return p, nil
}

// observe reports a finished use case. Hints count as a successful call
// with a "hint" field.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, fields map[string]any, err error) {
	var hint *domain.Hint
	if errors.As(err, &hint) {
		if fields == nil {
			fields = map[string]any{}
		}
		fields["hint"] = string(hint.Code)
		err = nil
	}
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
