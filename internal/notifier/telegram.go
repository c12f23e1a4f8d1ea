package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"blogapi/internal/config"
)

// Bot posts a Telegram message to the configured chat when a new blog
// post is published. A nil *Bot is valid and does nothing, so callers
// never branch on whether notifications are enabled.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewBot creates the notifier, or nil when notifications are disabled
// or not fully configured.
func NewBot(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	if !cfg.Notifications.Enabled || cfg.Notifications.TelegramBotToken == "" || cfg.Notifications.TelegramChatID == 0 {
		logger.Info("Telegram notifications are disabled")
		return nil, nil
	}

	api, err := tgbotapi.NewBotAPI(cfg.Notifications.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}
	logger.Info("Telegram bot authorized", zap.String("username", api.Self.UserName))

	return &Bot{
		api:    api,
		chatID: cfg.Notifications.TelegramChatID,
		logger: logger,
	}, nil
}

// NotifyNewPost is fire-and-forget: failures are logged and never
// surfaced to the request path.
func (b *Bot) NotifyNewPost(title, url string) {
	if b == nil {
		return
	}
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("New post published: %s\n%s", title, url))
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send new post notification", zap.Error(err))
	}
}
