package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
