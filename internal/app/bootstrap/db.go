// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/indexes"
)

// EnsureSchema creates the collection indexes the stores rely on:
// unique group names, unique member identifiers, and the donation
// query paths used by the reports and the bot.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("schema setup failed", zap.Error(err))
		return err
	}
	logger.Info("schema indexes ensured")
	return nil
}
