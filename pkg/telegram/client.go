package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is a thin wrapper used only to push run-completion reports to the
// HR chat; the analyzer never polls for updates.
type Client struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewClient(token string, chatID int64) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{
		Bot:    bot,
		ChatID: chatID,
	}, nil
}

// Notify sends a plain-text message to the configured report chat.
func (c *Client) Notify(text string) error {
	msg := tgbotapi.NewMessage(c.ChatID, text)
	_, err := c.Bot.Send(msg)
	return err
}
