package tools

import (
	"context"

	"github.com/google/uuid"
)

type callIDKey struct{}

// WithCallID returns the context with a new call ID,
// or ctx as is if it already carries one.
func WithCallID(ctx context.Context) context.Context {
	if CallID(ctx) != "" {
		return ctx
	}
	return context.WithValue(ctx, callIDKey{}, uuid.Must(uuid.NewV7()).String())
}

// CallID returns the ID of the tool call, or empty string outside of a call.
func CallID(ctx context.Context) string {
	if v, ok := ctx.Value(callIDKey{}).(string); ok {
		return v
	}
	return ""
}
