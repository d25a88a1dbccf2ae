// Package broadcast provides a generic, synchronous, ordered listener registry.
//
// A Registry holds listener handles in registration order and delivers each
// broadcast message to them one by one in the caller's goroutine. A single
// listener can be skipped for one broadcast, which is the usual "send to everyone
// but the author" case of a chat room.
//
// # Architecture
//
// The package defines two interfaces implemented by Registry:
//   - Subscribable: Register and Unregister only
//   - Broadcaster: Broadcast only
//
// Splitting them lets an owner expose subscription without letting subscribers
// raise messages themselves.
//
// # Usage
//
//	registry := broadcast.NewRegistry[string]()
//
//	alice := broadcast.NewListenerFunc(func(msg string) { fmt.Println("alice:", msg) })
//	bob := broadcast.NewListenerFunc(func(msg string) { fmt.Println("bob:", msg) })
//
//	registry.Register(alice)
//	registry.Register(bob)
//
//	_ = registry.Broadcast(ctx, "hi")                                   // alice, bob
//	_ = registry.Broadcast(ctx, "hi except bob", broadcast.Except(bob)) // alice
//
//	registry.Unregister(bob)
//
// # Identity
//
// Listeners are compared by pointer identity. Registering the same *Listener twice
// delivers twice; Unregister removes the first registration; Except skips all of
// them. Unregistering a handle that was never registered is a no-op.
//
// # Failure Policy
//
// By default a failing or panicking listener does not stop the broadcast: every
// remaining listener is still invoked and failures are returned together through
// errors.Join, each wrapped in a *DeliveryError. WithStopOnError switches to
// abort-on-first-failure:
//
//	registry := broadcast.NewRegistry(broadcast.WithStopOnError[string]())
//
// # Context Metadata
//
// Every broadcast gets a message ID and a start time; both are attached to the
// context handed to listeners together with the listener's own ID:
//
//	l := broadcast.NewListener(func(ctx context.Context, msg string) error {
//		log.Info("received", "message_id", broadcast.MessageID(ctx), "listener_id", broadcast.ListenerID(ctx))
//		return nil
//	})
//
// # Thread Safety
//
// Register, Unregister and Broadcast are safe for concurrent use. Broadcast
// iterates over a snapshot, so listeners may modify the registry while being
// invoked.
package broadcast
