package chat

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

// EventServer exposes its MsgArrived event directly. Anyone may subscribe or
// unsubscribe through it, but raising the event stays with the server.
type EventServer struct {
	msgArrived *broadcast.Registry[string]
}

// NewEventServer creates a server with no subscribers.
func NewEventServer(opts ...ServerOption) *EventServer {
	return &EventServer{
		msgArrived: newRegistry[string]("event", newServerOptions(opts)),
	}
}

// MsgArrived returns the subscription surface of the event.
func (s *EventServer) MsgArrived() broadcast.Subscribable[string] {
	return s.msgArrived
}

// Send raises MsgArrived for every subscriber.
func (s *EventServer) Send(ctx context.Context, msg string) error {
	return s.SendExcept(ctx, msg, nil)
}

// SendExcept raises MsgArrived for every subscriber except exclude.
func (s *EventServer) SendExcept(ctx context.Context, msg string, exclude *Client) error {
	if err := s.msgArrived.Broadcast(ctx, msg, broadcast.Except(exclude.Listener())); err != nil {
		return fmt.Errorf("event server: send: %w", err)
	}
	return nil
}
