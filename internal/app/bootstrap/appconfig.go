// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP ports,
// TLS, logging level, and CORS. AppConfig is where everything specific
// to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Donation program timeline. Reports list every month from this
	// anchor to the current month, filling gaps with zero rows.
	ProgramStartYear  int
	ProgramStartMonth time.Month

	// Telegram bot configuration
	TelegramEnabled  bool   // Run the lookup bot alongside the HTTP server
	TelegramBotToken string // Bot API token from @BotFather
}
