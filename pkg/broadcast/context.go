package broadcast

import (
	"context"
	"time"
)

type messageIDCtx struct{}

// WithMessageID attaches a broadcast message ID to the context.
func WithMessageID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, messageIDCtx{}, id)
}

// MessageID extracts the broadcast message ID from the context.
// Returns empty string if not present.
func MessageID(ctx context.Context) string {
	if id, ok := ctx.Value(messageIDCtx{}).(string); ok {
		return id
	}
	return ""
}

type sentAtCtx struct{}

// WithSentAt attaches the time the broadcast started to the context.
func WithSentAt(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, sentAtCtx{}, t)
}

// SentAt extracts the broadcast start time from the context.
// Returns zero time if not present.
func SentAt(ctx context.Context) time.Time {
	if t, ok := ctx.Value(sentAtCtx{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}

type listenerIDCtx struct{}

// WithListenerID attaches the ID of the listener being invoked to the context.
func WithListenerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, listenerIDCtx{}, id)
}

// ListenerID extracts the ID of the listener being invoked from the context.
// Returns empty string if not present.
func ListenerID(ctx context.Context) string {
	if id, ok := ctx.Value(listenerIDCtx{}).(string); ok {
		return id
	}
	return ""
}
