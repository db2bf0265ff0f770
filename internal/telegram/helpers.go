package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// callbackMessageRef extracts the chat and message ids the callback button
// was attached to. Inaccessible messages (too old) cannot be edited.
func callbackMessageRef(callback *models.CallbackQuery) (chatID int64, messageID int, ok bool) {
	msg := callback.Message.Message
	if msg == nil {
		return 0, 0, false
	}
	return msg.Chat.ID, msg.ID, true
}

// sendMessage sends a message, optionally with an inline keyboard
func (b *Bot) sendMessage(ctx context.Context, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	if _, err := b.bot.SendMessage(ctx, params); err != nil {
		b.logger.Error("failed to send message", "error", err, "chat_id", chatID)
	}
}

// editMessage replaces the text and keyboard of an existing message
func (b *Bot) editMessage(ctx context.Context, chatID int64, messageID int, text string, keyboard *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	if _, err := b.bot.EditMessageText(ctx, params); err != nil {
		b.logger.Error("failed to edit message", "error", err, "chat_id", chatID)
	}
}

// answerCallback acknowledges a callback query so the button stops spinning
func (b *Bot) answerCallback(ctx context.Context, callbackID, text string) {
	params := &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	}
	if text != "" {
		params.Text = text
	}

	if _, err := b.bot.AnswerCallbackQuery(ctx, params); err != nil {
		b.logger.Error("failed to answer callback", "error", err)
	}
}
