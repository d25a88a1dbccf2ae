// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/multicast/core/config"
//
//	type ChatConfig struct {
//		Clients []string `env:"CHAT_CLIENTS" envDefault:"1,2,3" envSeparator:","`
//		Exclude string   `env:"CHAT_EXCLUDE" envDefault:"2"`
//	}
//
//	func main() {
//		var chat ChatConfig
//
//		// Load with error handling
//		if err := config.Load(&chat); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&chat)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 ChatConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 ChatConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LogConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ChatConfig{})
//	config.MustLoad(&LogConfig{})
package config
