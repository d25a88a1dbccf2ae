package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/multicast/core/chat"
	"github.com/dmitrymomot/multicast/core/config"
	"github.com/dmitrymomot/multicast/core/logger"
)

// App runs the three chat server demos one after another.
type App struct {
	config Config
	out    io.Writer
	logger *slog.Logger
}

type AppOption func(*App) error

func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		out:    os.Stdout,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(app.config, os.Stderr)
	}

	return app, nil
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithOutput(w io.Writer) AppOption {
	return func(app *App) error {
		if w == nil {
			return errors.New("output cannot be nil")
		}
		app.out = w
		return nil
	}
}

func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		if len(cfg.Chat.Clients) == 0 {
			return errors.New("at least one chat client is required")
		}
		app.config = cfg
		return nil
	}
}

// Run executes the delegate, event and guideline demos in that order.
func (a *App) Run(ctx context.Context) error {
	serverOpts := []chat.ServerOption{chat.WithLogger(a.logger)}
	if a.config.Chat.StopOnError {
		serverOpts = append(serverOpts, chat.WithStopOnError())
	}

	demoCfg := chat.DemoConfig{
		Clients: a.config.Chat.Clients,
		Exclude: a.config.Chat.Exclude,
		Out:     a.out,
	}

	a.logger.InfoContext(ctx, "chat demo starting",
		logger.Event("demo_start"),
		logger.Count("clients", len(demoCfg.Clients)),
		logger.Client(demoCfg.Exclude))

	if err := chat.RunDelegateDemo(ctx, chat.NewDelegateServer(serverOpts...), demoCfg); err != nil {
		a.logger.ErrorContext(ctx, "demo failed", logger.Component("delegate"), logger.Error(err))
		return fmt.Errorf("delegate demo: %w", err)
	}

	fmt.Fprint(a.out, "\n\n")
	if err := chat.RunEventDemo(ctx, chat.NewEventServer(serverOpts...), demoCfg); err != nil {
		a.logger.ErrorContext(ctx, "demo failed", logger.Component("event"), logger.Error(err))
		return fmt.Errorf("event demo: %w", err)
	}

	fmt.Fprint(a.out, "\n\n")
	if err := chat.RunGuidelineDemo(ctx, chat.NewGuidelineServer(serverOpts...), demoCfg); err != nil {
		a.logger.ErrorContext(ctx, "demo failed", logger.Component("guideline"), logger.Error(err))
		return fmt.Errorf("guideline demo: %w", err)
	}

	a.logger.InfoContext(ctx, "chat demo finished", logger.Event("demo_stop"))
	return nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	var opts []logger.Option
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}

	opts = append(opts,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
	)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}

	return logger.New(opts...)
}
