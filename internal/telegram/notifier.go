package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers practice reminders through a Telegram bot to the chat
// the initiate configured
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New creates a notifier for the given bot token and chat
func New(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("reminder chat id is not set")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %v", err)
	}

	return &Notifier{api: api, chatID: chatID}, nil
}

// SendReminder sends the day's anchor practice
func (n *Notifier) SendReminder(text string) error {
	body := fmt.Sprintf("🜍 *Ancla para hoy*\n\n\"%s\"", text)
	msg := tgbotapi.NewMessage(n.chatID, body)
	msg.ParseMode = "Markdown"

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}
