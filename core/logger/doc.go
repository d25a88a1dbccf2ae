// Package logger provides structured logging utilities built on Go's standard slog package.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/multicast/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("chatdemo"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("chatdemo"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "chat")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Context Extractors
//
// Extractors inject attributes from the record context into every record
// logged with a *Context method:
//
//	func messageIDExtractor(ctx context.Context) (slog.Attr, bool) {
//		if id := broadcast.MessageID(ctx); id != "" {
//			return logger.MessageID(id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(logger.WithContextExtractors(messageIDExtractor))
//	log.InfoContext(ctx, "delivered") // ... message_id=<id>
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops,
// so they are safe to pass unconditionally:
//
//	log.Error("broadcast failed",
//		logger.Error(err),
//		logger.Server(server.String()),
//		logger.Client(client.Name()),
//		logger.Count("listeners", n),
//	)
package logger
