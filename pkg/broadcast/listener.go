package broadcast

import (
	"context"

	"github.com/google/uuid"
)

// HandlerFunc is a type-safe function signature for receiving messages of type T.
type HandlerFunc[T any] func(context.Context, T) error

// Listener is a registration handle wrapping a HandlerFunc.
// Registries compare listeners by pointer identity: two listeners built from the
// same function are distinct registrations, and the same listener registered twice
// is delivered to twice.
type Listener[T any] struct {
	id string
	fn HandlerFunc[T]
}

// NewListener creates a new listener handle for fn.
// Returns nil if fn is nil, which registries ignore.
//
// Example:
//
//	l := broadcast.NewListener(func(ctx context.Context, msg string) error {
//	    fmt.Println("got", msg)
//	    return nil
//	})
//	registry.Register(l)
func NewListener[T any](fn HandlerFunc[T]) *Listener[T] {
	if fn == nil {
		return nil
	}
	return &Listener[T]{
		id: uuid.New().String(),
		fn: fn,
	}
}

// NewListenerFunc is a shorthand for listeners that never fail.
func NewListenerFunc[T any](fn func(T)) *Listener[T] {
	if fn == nil {
		return nil
	}
	return NewListener(func(_ context.Context, msg T) error {
		fn(msg)
		return nil
	})
}

// ID returns the listener's identifier. It is used for logging and error
// reporting only; identity is still the pointer itself.
func (l *Listener[T]) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

// Handle invokes the wrapped function directly, bypassing any registry middleware.
func (l *Listener[T]) Handle(ctx context.Context, msg T) error {
	return l.fn(ctx, msg)
}
