package broadcast

import "log/slog"

// Option configures a Registry.
type Option[T any] func(*Registry[T])

// WithName sets the registry name used in log records.
func WithName[T any](name string) Option[T] {
	return func(r *Registry[T]) {
		r.name = name
	}
}

// WithLogger configures structured logging for registry operations.
// Registries log nothing unless a logger is set.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(r *Registry[T]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStopOnError makes Broadcast abort at the first failing listener.
// The remaining listeners of that broadcast are not invoked.
func WithStopOnError[T any]() Option[T] {
	return func(r *Registry[T]) {
		r.stopOnError = true
	}
}

// WithMiddleware wraps every delivery with the given middleware.
// The first middleware is the outermost.
func WithMiddleware[T any](middleware ...Middleware[T]) Option[T] {
	return func(r *Registry[T]) {
		r.middleware = append(r.middleware, middleware...)
	}
}

// SendOption configures a single Broadcast call.
type SendOption[T any] func(*sendOptions[T])

type sendOptions[T any] struct {
	except *Listener[T]
}

// Except skips every registration of l during the broadcast.
// Except(nil) skips nothing.
func Except[T any](l *Listener[T]) SendOption[T] {
	return func(o *sendOptions[T]) {
		o.except = l
	}
}
