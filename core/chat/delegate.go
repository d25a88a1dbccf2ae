package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrymomot/multicast/core/logger"
	"github.com/dmitrymomot/multicast/pkg/broadcast"
)

// DelegateServer keeps a private callback list. Clients join and leave through
// Connect and Disconnect; only the server can send.
type DelegateServer struct {
	registry *broadcast.Registry[string]
	opts     serverOptions
}

var (
	defaultDelegate     *DelegateServer
	defaultDelegateOnce sync.Once
)

// DefaultDelegateServer returns the process-wide server, creating it on first use.
// Prefer NewDelegateServer where the server can be passed explicitly.
func DefaultDelegateServer() *DelegateServer {
	defaultDelegateOnce.Do(func() {
		defaultDelegate = NewDelegateServer()
	})
	return defaultDelegate
}

// NewDelegateServer creates a server with no clients.
func NewDelegateServer(opts ...ServerOption) *DelegateServer {
	o := newServerOptions(opts)
	return &DelegateServer{
		registry: newRegistry[string]("delegate", o),
		opts:     o,
	}
}

// Connect adds l to the callback list.
func (s *DelegateServer) Connect(l *broadcast.Listener[string]) {
	s.registry.Register(l)
	s.opts.logger.Debug("client connected",
		logger.Component("delegate_server"),
		logger.ListenerID(l.ID()))
}

// Disconnect removes the first registration of l. Unknown listeners are ignored.
func (s *DelegateServer) Disconnect(l *broadcast.Listener[string]) {
	s.registry.Unregister(l)
	s.opts.logger.Debug("client disconnected",
		logger.Component("delegate_server"),
		logger.ListenerID(l.ID()))
}

// Clients returns the number of connected listeners.
func (s *DelegateServer) Clients() int {
	return s.registry.Len()
}

// Send delivers msg to every connected client.
func (s *DelegateServer) Send(ctx context.Context, msg string) error {
	return s.SendExcept(ctx, msg, nil)
}

// SendExcept delivers msg to every connected client except exclude.
// A nil exclude sends to everyone.
func (s *DelegateServer) SendExcept(ctx context.Context, msg string, exclude *Client) error {
	if err := s.registry.Broadcast(ctx, msg, broadcast.Except(exclude.Listener())); err != nil {
		return fmt.Errorf("delegate server: send: %w", err)
	}
	return nil
}
