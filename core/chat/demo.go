package chat

import (
	"context"
	"fmt"
	"io"
)

// DemoConfig describes one demo run.
type DemoConfig struct {
	Clients []string  // client names, connected in this order
	Exclude string    // name of the client skipped by the second message; empty or unknown skips nobody
	Out     io.Writer // receives banners and client output
}

const greeting = "Hi to all clients"

func exceptMessage(name string) string {
	return fmt.Sprintf("Hi to all clients except client %s", name)
}

// RunDelegateDemo connects the configured clients to server, greets everyone,
// then greets everyone except the excluded client.
func RunDelegateDemo(ctx context.Context, server *DelegateServer, cfg DemoConfig) error {
	fmt.Fprintln(cfg.Out, "Demo start: Delegate Chat Server.")

	var exclude *Client
	for _, name := range cfg.Clients {
		c := NewDelegateClient(name, server, cfg.Out)
		if name == cfg.Exclude {
			exclude = c
		}
	}

	if err := server.Send(ctx, greeting); err != nil {
		return err
	}
	if err := server.SendExcept(ctx, exceptMessage(cfg.Exclude), exclude); err != nil {
		return err
	}

	fmt.Fprintln(cfg.Out, "Demo stop: Delegate Chat Server.")
	return nil
}

// RunEventDemo is RunDelegateDemo for EventServer.
func RunEventDemo(ctx context.Context, server *EventServer, cfg DemoConfig) error {
	fmt.Fprintln(cfg.Out, "Demo start: Event Chat Server.")

	var exclude *Client
	for _, name := range cfg.Clients {
		c := NewEventClient(name, server, cfg.Out)
		if name == cfg.Exclude {
			exclude = c
		}
	}

	if err := server.Send(ctx, greeting); err != nil {
		return err
	}
	if err := server.SendExcept(ctx, exceptMessage(cfg.Exclude), exclude); err != nil {
		return err
	}

	fmt.Fprintln(cfg.Out, "Demo stop: Event Chat Server.")
	return nil
}

// RunGuidelineDemo is RunDelegateDemo for GuidelineServer.
func RunGuidelineDemo(ctx context.Context, server *GuidelineServer, cfg DemoConfig) error {
	fmt.Fprintf(cfg.Out, "Demo start: Guidelines Based Event Chat Server. Server: %s\n", server)

	var exclude *GuidelineClient
	for _, name := range cfg.Clients {
		c := NewGuidelineClient(name, server, cfg.Out)
		if name == cfg.Exclude {
			exclude = c
		}
	}

	if err := server.Send(ctx, greeting); err != nil {
		return err
	}
	if err := server.SendExcept(ctx, exceptMessage(cfg.Exclude), exclude); err != nil {
		return err
	}

	fmt.Fprintln(cfg.Out, "Demo stop: Guidelines Based Event Chat Server.")
	return nil
}
