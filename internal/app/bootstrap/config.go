// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
)

// appConfigKeys defines the configuration keys for the service.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, telegram_bot_token, etc.
//   - Environment variables: SHOHAYOTA_MONGO_URI, SHOHAYOTA_TELEGRAM_BOT_TOKEN, etc.
//   - Command-line flags: --mongo_uri, --telegram_bot_token, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "shohayota", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Program timeline anchor
	{Name: "program_start_year", Default: 2025, Desc: "First year of the donation program"},
	{Name: "program_start_month", Default: "August", Desc: "First month of the donation program (English month name)"},

	// Telegram bot
	{Name: "telegram_enabled", Default: false, Desc: "Run the Telegram lookup bot"},
	{Name: "telegram_bot_token", Default: "", Desc: "Telegram Bot API token"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SHOHAYOTA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		ProgramStartYear: appValues.Int("program_start_year"),

		TelegramEnabled:  appValues.Bool("telegram_enabled"),
		TelegramBotToken: appValues.String("telegram_bot_token"),
	}

	// The month name is resolved here so the rest of the app only ever
	// sees a time.Month.
	if month, ok := report.MonthByName(appValues.String("program_start_month")); ok {
		appCfg.ProgramStartMonth = month
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.ProgramStartMonth == 0 {
		return fmt.Errorf("program_start_month must be an English month name (e.g., \"August\")")
	}
	if appCfg.ProgramStartYear < 1 {
		return fmt.Errorf("program_start_year must be a positive year")
	}

	if appCfg.TelegramEnabled && appCfg.TelegramBotToken == "" {
		return fmt.Errorf("telegram_enabled requires telegram_bot_token to be set")
	}

	return nil
}
