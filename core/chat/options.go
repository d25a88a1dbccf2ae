package chat

import (
	"log/slog"

	"github.com/dmitrymomot/multicast/core/logger"
	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

type serverOptions struct {
	logger      *slog.Logger
	stopOnError bool
}

// ServerOption configures any of the chat servers.
type ServerOption func(*serverOptions)

// WithLogger sets the logger used by the server and its registry.
// If not set, nothing is logged.
func WithLogger(l *slog.Logger) ServerOption {
	return func(o *serverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStopOnError makes a failing client abort delivery to the clients after it.
func WithStopOnError() ServerOption {
	return func(o *serverOptions) {
		o.stopOnError = true
	}
}

func newServerOptions(opts []ServerOption) serverOptions {
	o := serverOptions{logger: logger.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newRegistry builds the listener registry backing a server.
func newRegistry[T any](name string, o serverOptions) *broadcast.Registry[T] {
	opts := []broadcast.Option[T]{
		broadcast.WithName[T](name),
		broadcast.WithLogger[T](o.logger),
		broadcast.WithMiddleware(broadcast.LoggingMiddleware[T](o.logger)),
	}
	if o.stopOnError {
		opts = append(opts, broadcast.WithStopOnError[T]())
	}
	return broadcast.NewRegistry(opts...)
}
