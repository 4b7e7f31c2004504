package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "shohayota",
		ProgramStartYear:  2025,
		ProgramStartMonth: time.August,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected an error for a malformed Mongo URI")
	}
}

func TestValidateConfig_MissingStartMonth(t *testing.T) {
	cfg := validAppConfig()
	cfg.ProgramStartMonth = 0
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected an error when the start month is unset")
	}
}

func TestValidateConfig_TelegramNeedsToken(t *testing.T) {
	cfg := validAppConfig()
	cfg.TelegramEnabled = true
	cfg.TelegramBotToken = ""
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected an error when the bot is enabled without a token")
	}

	cfg.TelegramBotToken = "123456:token"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("token set, still rejected: %v", err)
	}
}
