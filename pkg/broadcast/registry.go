package broadcast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Subscribable is the add/remove half of a Registry.
// Hand it out when callers may subscribe but must not broadcast.
type Subscribable[T any] interface {
	Register(l *Listener[T])
	Unregister(l *Listener[T])
}

// Broadcaster is the delivery half of a Registry.
type Broadcaster[T any] interface {
	Broadcast(ctx context.Context, msg T, opts ...SendOption[T]) error
}

var (
	_ Subscribable[string] = (*Registry[string])(nil)
	_ Broadcaster[string]  = (*Registry[string])(nil)
)

// Registry is an ordered collection of listeners with synchronous delivery.
type Registry[T any] struct {
	mu        sync.RWMutex
	listeners []*Listener[T]

	name        string
	stopOnError bool
	middleware  []Middleware[T]
	logger      *slog.Logger

	broadcasts atomic.Int64
	delivered  atomic.Int64
	failed     atomic.Int64
}

// Stats provides delivery counters for observability and tests.
type Stats struct {
	Listeners  int
	Broadcasts int64
	Delivered  int64
	Failed     int64
}

// NewRegistry creates an empty registry.
//
// Example:
//
//	registry := broadcast.NewRegistry(
//	    broadcast.WithName[string]("lobby"),
//	    broadcast.WithLogger[string](logger),
//	)
func NewRegistry[T any](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register appends l to the registry. Registering the same handle twice
// results in two deliveries per broadcast. A nil handle is ignored.
func (r *Registry[T]) Register(l *Listener[T]) {
	if l == nil {
		return
	}

	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	n := len(r.listeners)
	r.mu.Unlock()

	r.logger.Debug("listener registered",
		slog.String("registry", r.name),
		slog.String("listener_id", l.id),
		slog.Int("listeners", n))
}

// Unregister removes the first registration of l. Unknown handles are ignored.
func (r *Registry[T]) Unregister(l *Listener[T]) {
	if l == nil {
		return
	}

	r.mu.Lock()
	i := slices.Index(r.listeners, l)
	if i < 0 {
		r.mu.Unlock()
		return
	}
	r.listeners = slices.Delete(r.listeners, i, i+1)
	n := len(r.listeners)
	r.mu.Unlock()

	r.logger.Debug("listener unregistered",
		slog.String("registry", r.name),
		slog.String("listener_id", l.id),
		slog.Int("listeners", n))
}

// Broadcast delivers msg to every registration in registration order,
// skipping all registrations of the handle given with Except.
//
// Delivery happens in the caller's goroutine. The listener list is snapshotted
// before the first delivery, so listeners may register or unregister during a
// broadcast; the change applies to the next one.
//
// By default every listener is invoked and failures are returned together via
// errors.Join, each wrapped in a *DeliveryError. With WithStopOnError the first
// failure aborts the remaining deliveries. Panics are recovered and reported as
// ErrListenerPanic.
//
// Broadcasting to an empty registry is a no-op.
func (r *Registry[T]) Broadcast(ctx context.Context, msg T, opts ...SendOption[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var so sendOptions[T]
	for _, opt := range opts {
		opt(&so)
	}

	r.mu.RLock()
	snapshot := slices.Clone(r.listeners)
	r.mu.RUnlock()

	r.broadcasts.Add(1)
	if len(snapshot) == 0 {
		return nil
	}

	start := time.Now()
	ctx = WithSentAt(WithMessageID(ctx, uuid.New().String()), start)

	var errs []error
	delivered := 0
	for i, l := range snapshot {
		if so.except != nil && l == so.except {
			continue
		}

		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := r.deliver(ctx, l, msg); err != nil {
			r.failed.Add(1)
			derr := &DeliveryError{ListenerID: l.id, Position: i, Err: err}
			if r.stopOnError {
				r.logger.WarnContext(ctx, "broadcast aborted",
					slog.String("registry", r.name),
					slog.String("message_id", MessageID(ctx)),
					slog.Int("delivered", delivered),
					slog.Any("error", derr))
				return derr
			}
			errs = append(errs, derr)
			continue
		}

		r.delivered.Add(1)
		delivered++
	}

	r.logger.DebugContext(ctx, "broadcast completed",
		slog.String("registry", r.name),
		slog.String("message_id", MessageID(ctx)),
		slog.Int("delivered", delivered),
		slog.Int("failed", len(errs)),
		slog.Duration("duration", time.Since(start)))

	return errors.Join(errs...)
}

func (r *Registry[T]) deliver(ctx context.Context, l *Listener[T], msg T) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrListenerPanic, rec)
		}
	}()

	fn := chainMiddleware(l.fn, r.middleware)
	return fn(WithListenerID(ctx, l.id), msg)
}

// Len returns the number of registrations, duplicates included.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}

// Contains reports whether l is registered at least once.
func (r *Registry[T]) Contains(l *Listener[T]) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.listeners, l)
}

// Listeners returns a copy of the registrations in delivery order.
func (r *Registry[T]) Listeners() []*Listener[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.listeners)
}

// Stats returns current delivery counters.
func (r *Registry[T]) Stats() Stats {
	return Stats{
		Listeners:  r.Len(),
		Broadcasts: r.broadcasts.Load(),
		Delivered:  r.delivered.Load(),
		Failed:     r.failed.Load(),
	}
}
