package broadcast

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps a HandlerFunc to add cross-cutting behaviour to every delivery
// made by a Registry.
type Middleware[T any] func(HandlerFunc[T]) HandlerFunc[T]

// chainMiddleware applies middleware so that the first one in the slice
// becomes the outermost wrapper (executes first).
func chainMiddleware[T any](fn HandlerFunc[T], middleware []Middleware[T]) HandlerFunc[T] {
	for i := len(middleware) - 1; i >= 0; i-- {
		fn = middleware[i](fn)
	}
	return fn
}

// LoggingMiddleware logs every delivery with timing.
// Successful deliveries are logged at debug level, failures at error level.
//
// Example:
//
//	registry := broadcast.NewRegistry[string](
//	    broadcast.WithMiddleware(broadcast.LoggingMiddleware[string](logger)),
//	)
func LoggingMiddleware[T any](logger *slog.Logger) Middleware[T] {
	return func(next HandlerFunc[T]) HandlerFunc[T] {
		return func(ctx context.Context, msg T) error {
			start := time.Now()
			err := next(ctx, msg)

			attrs := []any{
				slog.String("message_id", MessageID(ctx)),
				slog.String("listener_id", ListenerID(ctx)),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.ErrorContext(ctx, "delivery failed", append(attrs, slog.Any("error", err))...)
			} else {
				logger.DebugContext(ctx, "delivery completed", attrs...)
			}

			return err
		}
	}
}
