package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"banking-ledger/internal/domain/apperr"
)

type undoStep struct {
	name string
	fn   func(ctx context.Context) error
}

// compensation collects the undo steps of an operation in progress and runs
// them newest first when a later step fails.
type compensation struct{ steps []undoStep }

func (c *compensation) push(name string, fn func(ctx context.Context) error) {
	c.steps = append(c.steps, undoStep{name: name, fn: fn})
}

// unwind runs every step, newest first, and returns cause unchanged when all
// of them succeed. A failing step does not stop the older ones; the failures
// are joined into one consistency error.
func (c *compensation) unwind(ctx context.Context, cause error) error {
	var failed []error
	for i := len(c.steps) - 1; i >= 0; i-- {
		s := c.steps[i]
		if err := s.fn(ctx); err != nil {
			log.Printf("ledger: COMPENSATION FAILED at %q: %v (cause: %v)", s.name, err, cause)
			failed = append(failed, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	c.steps = nil
	if len(failed) > 0 {
		return apperr.Consistency(cause, errors.Join(failed...))
	}
	return cause
}
