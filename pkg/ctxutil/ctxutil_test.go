package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCallerID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithCallerID(context.Background(), id)

	got, ok := CallerIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected caller ID to be present")
	}
	if got != id {
		t.Errorf("caller ID: got %s, want %s", got, id)
	}
}

func TestCallerID_Absent(t *testing.T) {
	t.Parallel()

	if _, ok := CallerIDFromCtx(context.Background()); ok {
		t.Error("expected no caller ID in empty context")
	}
}

func TestCallerID_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithCallerID(context.Background(), uuid.Nil)
	if _, ok := CallerIDFromCtx(ctx); ok {
		t.Error("nil UUID must not count as an authenticated caller")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("request ID: got %q, want %q", got, "req-123")
	}
}

func TestRequestID_Absent(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
