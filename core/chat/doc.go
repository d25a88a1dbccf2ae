// Package chat implements three in-process chat servers on top of
// broadcast.Registry. They behave identically and differ only in how clients
// subscribe:
//
//   - DelegateServer keeps the callback list private; clients go through
//     Connect and Disconnect. DefaultDelegateServer returns a process-wide
//     instance.
//   - EventServer exposes MsgArrived as a broadcast.Subscribable, so clients
//     subscribe directly but cannot raise the event.
//   - GuidelineServer is an instance with its own identity; its event payload,
//     MsgArrivedEvent, carries the sending server.
//
// Every server can send to all clients or to all but one:
//
//	server := chat.NewEventServer()
//	one := chat.NewEventClient("1", server, os.Stdout)
//	two := chat.NewEventClient("2", server, os.Stdout)
//
//	_ = server.Send(ctx, "Hi to all clients")
//	_ = server.SendExcept(ctx, "Hi to all clients except client 2", two)
//	// Msg arrived (Client 1): Hi to all clients
//	// Msg arrived (Client 2): Hi to all clients
//	// Msg arrived (Client 1): Hi to all clients except client 2
//
// Delivery is synchronous and in connection order.
package chat
