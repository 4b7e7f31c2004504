// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/bot/telegram"
)

// The bot outlives Startup, so its cancel func is held here for
// Shutdown to call.
var (
	botCancel context.CancelFunc
	botDone   chan struct{}
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// When the Telegram bot is enabled it starts long-polling here, sharing
// the stores with the HTTP side.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if !appCfg.TelegramEnabled {
		return nil
	}

	bot, err := telegram.New(appCfg.TelegramBotToken, deps.MongoDatabase, logger)
	if err != nil {
		logger.Error("telegram bot init failed", zap.Error(err))
		return err
	}

	var botCtx context.Context
	botCtx, botCancel = context.WithCancel(context.Background())
	botDone = make(chan struct{})
	go func() {
		defer close(botDone)
		bot.Run(botCtx)
	}()

	logger.Info("telegram bot started")
	return nil
}
