package chat_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/multicast/core/chat"
	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

var errWriteFailed = errors.New("write failed")

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestDelegateServer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var buf bytes.Buffer

	server := chat.NewDelegateServer()
	chat.NewDelegateClient("A", server, &buf)
	b := chat.NewDelegateClient("B", server, &buf)
	chat.NewDelegateClient("C", server, &buf)
	require.Equal(t, 3, server.Clients())

	require.NoError(t, server.Send(ctx, "hi"))
	require.NoError(t, server.SendExcept(ctx, "hi except B", b))

	assert.Equal(t, []string{
		"Msg arrived (Client A): hi",
		"Msg arrived (Client B): hi",
		"Msg arrived (Client C): hi",
		"Msg arrived (Client A): hi except B",
		"Msg arrived (Client C): hi except B",
	}, lines(&buf))
}

func TestDelegateServer_ConnectDisconnect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	server := chat.NewDelegateServer()

	var got []string
	l := broadcast.NewListenerFunc(func(msg string) { got = append(got, msg) })

	server.Connect(l)
	server.Connect(l)
	require.NoError(t, server.Send(ctx, "twice"))
	assert.Equal(t, []string{"twice", "twice"}, got)

	server.Disconnect(l)
	server.Disconnect(l)
	server.Disconnect(l)
	require.NoError(t, server.Send(ctx, "nobody"))
	assert.Equal(t, []string{"twice", "twice"}, got)
	assert.Equal(t, 0, server.Clients())
}

func TestDefaultDelegateServer(t *testing.T) {
	t.Parallel()

	first := chat.DefaultDelegateServer()
	second := chat.DefaultDelegateServer()

	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestEventServer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var buf bytes.Buffer

	server := chat.NewEventServer()
	a := chat.NewEventClient("A", server, &buf)
	b := chat.NewEventClient("B", server, &buf)

	require.NoError(t, server.SendExcept(ctx, "not for A", a))
	b.Close()
	b.Close()
	require.NoError(t, server.Send(ctx, "after B left"))

	assert.Equal(t, []string{
		"Msg arrived (Client B): not for A",
		"Msg arrived (Client A): after B left",
	}, lines(&buf))
	assert.Equal(t, "B", b.Name())
}

func TestEventServer_ExternalSubscriber(t *testing.T) {
	t.Parallel()

	server := chat.NewEventServer()

	var got string
	l := broadcast.NewListenerFunc(func(msg string) { got = msg })
	server.MsgArrived().Register(l)

	require.NoError(t, server.Send(context.Background(), "raw"))
	assert.Equal(t, "raw", got)

	server.MsgArrived().Unregister(l)
	require.NoError(t, server.Send(context.Background(), "ignored"))
	assert.Equal(t, "raw", got)
}

func TestGuidelineServer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var buf bytes.Buffer

	server := chat.NewGuidelineServer()
	chat.NewGuidelineClient("1", server, &buf)
	two := chat.NewGuidelineClient("2", server, &buf)
	chat.NewGuidelineClient("3", server, &buf)

	require.NoError(t, server.Send(ctx, "hello"))
	require.NoError(t, server.SendExcept(ctx, "hello except 2", two))

	suffix := " Server: " + server.String()
	assert.Equal(t, []string{
		"Msg arrived (Client 1): hello" + suffix,
		"Msg arrived (Client 2): hello" + suffix,
		"Msg arrived (Client 3): hello" + suffix,
		"Msg arrived (Client 1): hello except 2" + suffix,
		"Msg arrived (Client 3): hello except 2" + suffix,
	}, lines(&buf))
}

func TestGuidelineServer_Sender(t *testing.T) {
	t.Parallel()

	s1 := chat.NewGuidelineServer()
	s2 := chat.NewGuidelineServer()
	assert.NotEqual(t, s1.ID(), s2.ID())
	assert.Contains(t, s1.String(), s1.ID())

	var events []chat.MsgArrivedEvent
	s1.MsgArrived().Register(broadcast.NewListenerFunc(func(ev chat.MsgArrivedEvent) {
		events = append(events, ev)
	}))

	require.NoError(t, s1.Send(context.Background(), "m"))
	require.Len(t, events, 1)
	assert.Same(t, s1, events[0].Sender)
	assert.Equal(t, "m", events[0].Message)

	require.NoError(t, s2.Send(context.Background(), "other server"))
	assert.Len(t, events, 1)
}

func TestServers_EmptySend(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.NoError(t, chat.NewDelegateServer().Send(ctx, "m"))
	assert.NoError(t, chat.NewEventServer().SendExcept(ctx, "m", nil))
	assert.NoError(t, chat.NewGuidelineServer().SendExcept(ctx, "m", nil))
}

func TestServers_FailurePolicy(t *testing.T) {
	t.Parallel()

	t.Run("continue on error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		server := chat.NewDelegateServer()
		chat.NewDelegateClient("broken", server, failingWriter{})
		chat.NewDelegateClient("ok", server, &buf)

		err := server.Send(context.Background(), "m")
		require.ErrorIs(t, err, errWriteFailed)
		assert.Contains(t, err.Error(), "delegate server")
		assert.Equal(t, "Msg arrived (Client ok): m\n", buf.String())
	})

	t.Run("stop on error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		server := chat.NewEventServer(chat.WithStopOnError())
		chat.NewEventClient("broken", server, failingWriter{})
		chat.NewEventClient("ok", server, &buf)

		err := server.Send(context.Background(), "m")
		require.ErrorIs(t, err, errWriteFailed)
		assert.Empty(t, buf.String())
	})

	t.Run("guideline wraps error", func(t *testing.T) {
		t.Parallel()

		server := chat.NewGuidelineServer()
		chat.NewGuidelineClient("broken", server, failingWriter{})

		err := server.Send(context.Background(), "m")
		require.ErrorIs(t, err, errWriteFailed)

		var derr *broadcast.DeliveryError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, 0, derr.Position)
	})
}
