package telemetry

import (
	"context"

	"github.com/google/uuid"
)

type turnIDKey struct{}

// WithTurnID returns a child context carrying id.
func WithTurnID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, turnIDKey{}, id)
}

// TurnIDFromContext returns the turn ID from ctx, if present and non-empty.
func TurnIDFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(turnIDKey{}).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// EnsureTurnID returns ctx unchanged when it already carries a turn ID;
// otherwise it attaches a fresh random one.
func EnsureTurnID(ctx context.Context) (context.Context, string) {
	if id, ok := TurnIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return WithTurnID(ctx, id), id
}
