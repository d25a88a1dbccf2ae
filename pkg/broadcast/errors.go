package broadcast

import (
	"errors"
	"fmt"
)

var (
	// ErrListenerPanic is wrapped by the DeliveryError produced when a listener panics.
	ErrListenerPanic = errors.New("listener panicked")
)

// DeliveryError describes a single failed delivery within a broadcast.
type DeliveryError struct {
	ListenerID string // ID of the failing listener
	Position   int    // index of the registration in the broadcast snapshot
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("listener %s at position %d failed: %v", e.ListenerID, e.Position, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
