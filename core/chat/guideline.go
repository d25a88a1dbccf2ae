package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/multicast/core/logger"
	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

// MsgArrivedEvent is the payload of GuidelineServer's MsgArrived event.
type MsgArrivedEvent struct {
	Sender  *GuidelineServer // server that raised the event
	Message string
}

// GuidelineServer is an instance server whose event payload carries the sender.
type GuidelineServer struct {
	id         string
	msgArrived *broadcast.Registry[MsgArrivedEvent]
	opts       serverOptions
}

// NewGuidelineServer creates a server with a fresh identity and no subscribers.
func NewGuidelineServer(opts ...ServerOption) *GuidelineServer {
	o := newServerOptions(opts)
	return &GuidelineServer{
		id:         uuid.New().String(),
		msgArrived: newRegistry[MsgArrivedEvent]("guideline", o),
		opts:       o,
	}
}

// ID returns the server identity.
func (s *GuidelineServer) ID() string {
	return s.id
}

// String implements fmt.Stringer.
func (s *GuidelineServer) String() string {
	return "GuidelineServer(" + s.id + ")"
}

// MsgArrived returns the subscription surface of the event.
func (s *GuidelineServer) MsgArrived() broadcast.Subscribable[MsgArrivedEvent] {
	return s.msgArrived
}

// Send raises MsgArrived for every subscriber.
func (s *GuidelineServer) Send(ctx context.Context, msg string) error {
	return s.SendExcept(ctx, msg, nil)
}

// SendExcept raises MsgArrived for every subscriber except exclude.
func (s *GuidelineServer) SendExcept(ctx context.Context, msg string, exclude *GuidelineClient) error {
	ev := MsgArrivedEvent{Sender: s, Message: msg}
	return s.onMsgArrived(ctx, ev, exclude.Listener())
}

// onMsgArrived raises the event. The sender is always s.
func (s *GuidelineServer) onMsgArrived(ctx context.Context, ev MsgArrivedEvent, exclude *broadcast.Listener[MsgArrivedEvent]) error {
	if err := s.msgArrived.Broadcast(ctx, ev, broadcast.Except(exclude)); err != nil {
		s.opts.logger.ErrorContext(ctx, "msg arrived event failed",
			logger.Server(s.id),
			logger.Error(err))
		return fmt.Errorf("guideline server %s: send: %w", s.id, err)
	}
	return nil
}
