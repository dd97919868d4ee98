package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petasbytes/taskchat/internal/telemetry"
)

func TestTurnID_RoundTrip(t *testing.T) {
	ctx := telemetry.WithTurnID(context.Background(), "turn-123")
	got, ok := telemetry.TurnIDFromContext(ctx)
	if !ok || got != "turn-123" {
		t.Fatalf("want turn-123,true; got %q,%v", got, ok)
	}
}

func TestTurnID_EmptyIDRejectedOnRead(t *testing.T) {
	ctx := telemetry.WithTurnID(context.Background(), "")
	got, ok := telemetry.TurnIDFromContext(ctx)
	if ok || got != "" {
		t.Fatalf("want empty,false; got %q,%v", got, ok)
	}
}

func TestTurnID_MissingValue(t *testing.T) {
	got, ok := telemetry.TurnIDFromContext(context.Background())
	if ok || got != "" {
		t.Fatalf("want empty,false; got %q,%v", got, ok)
	}
}

func TestTurnID_LastWriteWins(t *testing.T) {
	ctx := telemetry.WithTurnID(telemetry.WithTurnID(context.Background(), "t1"), "t2")
	if got, _ := telemetry.TurnIDFromContext(ctx); got != "t2" {
		t.Fatalf("want t2; got %q", got)
	}
}

func TestTurnID_ParentCancellationPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	child := telemetry.WithTurnID(parent, "t1")
	cancel()

	select {
	case <-child.Done():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("child context did not observe parent cancellation")
	}
}

func TestEnsureTurnID_KeepsExisting(t *testing.T) {
	ctx := telemetry.WithTurnID(context.Background(), "keep-me")
	_, id := telemetry.EnsureTurnID(ctx)
	if id != "keep-me" {
		t.Fatalf("existing id replaced: %q", id)
	}
}

func TestEnsureTurnID_GeneratesUUID(t *testing.T) {
	ctx, id := telemetry.EnsureTurnID(context.Background())
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id is not a uuid: %q (%v)", id, err)
	}
	if got, ok := telemetry.TurnIDFromContext(ctx); !ok || got != id {
		t.Fatalf("id not attached to context: %q,%v", got, ok)
	}
}
