package broadcast_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

func TestWithMiddleware_Order(t *testing.T) {
	t.Parallel()

	var calls []string
	tag := func(name string) broadcast.Middleware[string] {
		return func(next broadcast.HandlerFunc[string]) broadcast.HandlerFunc[string] {
			return func(ctx context.Context, msg string) error {
				calls = append(calls, name+":before")
				err := next(ctx, msg)
				calls = append(calls, name+":after")
				return err
			}
		}
	}

	registry := broadcast.NewRegistry(
		broadcast.WithMiddleware(tag("outer"), tag("inner")),
	)
	registry.Register(broadcast.NewListenerFunc(func(msg string) {
		calls = append(calls, "listener:"+msg)
	}))

	require.NoError(t, registry.Broadcast(context.Background(), "m"))
	assert.Equal(t, []string{
		"outer:before",
		"inner:before",
		"listener:m",
		"inner:after",
		"outer:after",
	}, calls)
}

func TestWithMiddleware_CanTransform(t *testing.T) {
	t.Parallel()

	upper := func(next broadcast.HandlerFunc[string]) broadcast.HandlerFunc[string] {
		return func(ctx context.Context, msg string) error {
			return next(ctx, strings.ToUpper(msg))
		}
	}

	var got string
	registry := broadcast.NewRegistry(broadcast.WithMiddleware[string](upper))
	registry.Register(broadcast.NewListenerFunc(func(msg string) { got = msg }))

	require.NoError(t, registry.Broadcast(context.Background(), "shout"))
	assert.Equal(t, "SHOUT", got)
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ok := broadcast.NewListenerFunc(func(string) {})
	bad := broadcast.NewListener(func(context.Context, string) error {
		return errors.New("disk on fire")
	})

	registry := broadcast.NewRegistry(
		broadcast.WithMiddleware(broadcast.LoggingMiddleware[string](logger)),
	)
	registry.Register(ok)
	registry.Register(bad)

	err := registry.Broadcast(context.Background(), "m")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "delivery completed")
	assert.Contains(t, out, "listener_id="+ok.ID())
	assert.Contains(t, out, "delivery failed")
	assert.Contains(t, out, "listener_id="+bad.ID())
	assert.Contains(t, out, "disk on fire")
}

func TestListener_Handle(t *testing.T) {
	t.Parallel()

	var got string
	l := broadcast.NewListener(func(_ context.Context, msg string) error {
		got = msg
		return nil
	})

	require.NoError(t, l.Handle(context.Background(), "direct"))
	assert.Equal(t, "direct", got)
	assert.NotEmpty(t, l.ID())

	var nilListener *broadcast.Listener[string]
	assert.Empty(t, nilListener.ID())
	assert.Nil(t, broadcast.NewListenerFunc[string](nil))
}
