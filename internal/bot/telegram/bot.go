// Package telegram runs the donation lookup bot. Members send their
// ID (either format, or just the numeric part) or their name in a
// chat and get back their approved donation history in Bengali.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/report"
	donationstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/donations"
	memberstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/members"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/normalize"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/system/timeouts"
)

// Bot long-polls the Telegram API and answers member queries from
// the same stores the admin API uses.
type Bot struct {
	api *tgbotapi.BotAPI
	db  *mongo.Database
	log *zap.Logger
}

// New authenticates against the Telegram API with the given token.
func New(token string, db *mongo.Database, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	logger.Info("telegram bot authorized", zap.String("username", api.Self.UserName))
	return &Bot{api: api, db: db, log: logger}, nil
}

// Run consumes updates until ctx is canceled. Each message is handled
// inline; Telegram queues updates server side, so a slow database
// never drops a query.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	query := normalize.QueryParam(msg.Text)
	if query == "" {
		return
	}

	reply, err := b.lookup(ctx, query)
	if err != nil {
		b.log.Warn("bot lookup", zap.String("query", query), zap.Error(err))
		reply = "দুঃখিত, এই মুহূর্তে তথ্য আনা যাচ্ছে না। একটু পরে আবার চেষ্টা করুন।"
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(out); err != nil {
		b.log.Warn("bot send", zap.Error(err))
	}
}

// lookup resolves the query to members and formats their approved
// donation history.
func (b *Bot) lookup(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	members, err := memberstore.New(b.db).All(ctx)
	if err != nil {
		return "", err
	}

	match := report.MatchMembers(query, members)
	if match.Empty() {
		// Members often type their name instead of an ID.
		match = report.MatchMembersByName(query, members)
	}
	if match.Empty() {
		return FormatSummary(match, nil), nil
	}

	donations, err := donationstore.New(b.db).ByMemberRefs(ctx, match.Refs)
	if err != nil {
		return "", err
	}
	return FormatSummary(match, donations), nil
}
