package utils

import (
	"context"

	"inventory-system/pkg/contextkeys"
)

// GetActorFromCtx returns the caller identity placed into the context by
// the actor middleware. The empty string means an unattributed caller.
func GetActorFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(contextkeys.ActorIDKey).(string); ok {
		return v
	}
	return ""
}

func GetActorNameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(contextkeys.ActorNameKey).(string); ok {
		return v
	}
	return ""
}

// WithActor is used by tests and internal callers to attribute operations.
func WithActor(ctx context.Context, actorID, actorName string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.ActorIDKey, actorID)
	return context.WithValue(ctx, contextkeys.ActorNameKey, actorName)
}
