package runctx

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const RunIDKey contextKey = "run_id"

// WithRunID tags ctx with a run ID and a logger carrying it. An empty runID is
// replaced with a fresh UUID.
func WithRunID(ctx context.Context, logger zerolog.Logger, runID string) (context.Context, zerolog.Logger) {
	if runID == "" {
		runID = uuid.New().String()
	}

	ctx = context.WithValue(ctx, RunIDKey, runID)

	loggerWithID := logger.With().Str("run_id", runID).Logger()
	ctx = loggerWithID.WithContext(ctx)

	return ctx, loggerWithID
}

func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}

// Logger returns the run-scoped logger stored in ctx, or fallback when ctx
// was not produced by WithRunID.
func Logger(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if GetRunID(ctx) == "" {
		return fallback
	}
	return *zerolog.Ctx(ctx)
}
