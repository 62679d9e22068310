package storage

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ravintola-sinet/notify-svc/internal/service"
)

// TelegramNotifier posts plain text to the staff group chat.
type TelegramNotifier struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{Bot: bot, ChatID: chatID}, nil
}

func (n *TelegramNotifier) Send(_ context.Context, text string) error {
	_, err := n.Bot.Send(tgbotapi.NewMessage(n.ChatID, text))
	return err
}

// LogNotifier is used when no bot token is configured.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, text string) error {
	log.Printf("[notify-svc] notification:\n%s", text)
	return nil
}

var (
	_ service.Notifier = (*TelegramNotifier)(nil)
	_ service.Notifier = LogNotifier{}
)
