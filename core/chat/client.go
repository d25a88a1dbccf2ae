package chat

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

// Client is a named participant that prints every message it receives.
type Client struct {
	name     string
	out      io.Writer
	listener *broadcast.Listener[string]
	detach   func(*broadcast.Listener[string])
}

// NewDelegateClient creates a client and connects it to server.
func NewDelegateClient(name string, server *DelegateServer, out io.Writer) *Client {
	return newClient(name, out, server.Connect, server.Disconnect)
}

// NewEventClient creates a client and subscribes it to the server's MsgArrived event.
func NewEventClient(name string, server *EventServer, out io.Writer) *Client {
	ev := server.MsgArrived()
	return newClient(name, out, ev.Register, ev.Unregister)
}

func newClient(name string, out io.Writer, attach, detach func(*broadcast.Listener[string])) *Client {
	c := &Client{name: name, out: out, detach: detach}
	c.listener = broadcast.NewListener(c.onMsgArrived)
	attach(c.listener)
	return c
}

func (c *Client) onMsgArrived(_ context.Context, msg string) error {
	_, err := fmt.Fprintf(c.out, "Msg arrived (Client %s): %s\n", c.name, msg)
	return err
}

// Name returns the client name.
func (c *Client) Name() string {
	return c.name
}

// Listener returns the handle the client is registered with.
// A nil client has no listener.
func (c *Client) Listener() *broadcast.Listener[string] {
	if c == nil {
		return nil
	}
	return c.listener
}

// Close disconnects the client. Closing twice is harmless.
func (c *Client) Close() {
	c.detach(c.listener)
}

// GuidelineClient is a Client for GuidelineServer. It also prints the sender.
type GuidelineClient struct {
	name     string
	out      io.Writer
	server   *GuidelineServer
	listener *broadcast.Listener[MsgArrivedEvent]
}

// NewGuidelineClient creates a client and subscribes it to server.
func NewGuidelineClient(name string, server *GuidelineServer, out io.Writer) *GuidelineClient {
	c := &GuidelineClient{name: name, out: out, server: server}
	c.listener = broadcast.NewListener(c.onMsgArrived)
	server.MsgArrived().Register(c.listener)
	return c
}

func (c *GuidelineClient) onMsgArrived(_ context.Context, ev MsgArrivedEvent) error {
	_, err := fmt.Fprintf(c.out, "Msg arrived (Client %s): %s Server: %s\n", c.name, ev.Message, ev.Sender)
	return err
}

// Name returns the client name.
func (c *GuidelineClient) Name() string {
	return c.name
}

// Listener returns the handle the client is registered with.
func (c *GuidelineClient) Listener() *broadcast.Listener[MsgArrivedEvent] {
	if c == nil {
		return nil
	}
	return c.listener
}

// Close unsubscribes the client from its server.
func (c *GuidelineClient) Close() {
	c.server.MsgArrived().Unregister(c.listener)
}
