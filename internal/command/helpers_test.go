package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() Clock {
	return func() time.Time { return testNow }
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}
