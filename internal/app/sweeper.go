package app

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// Sweeper periodically removes engagement left dangling by lost lifecycle
// events. A failed sweep is logged and retried on the next tick.
type Sweeper struct {
	Interval time.Duration
	SweepCmd command.Command[command.Empty, domain.CascadeResult]
}

func (s *Sweeper) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}

		if _, err := s.SweepCmd.Execute(ctx, command.Empty{}); err != nil {
			logger.ErrorContext(ctx, "error sweeping dangling engagement", "error", err)
		}
	}
}
