package telegram

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/mixelka/tempmailbot/internal/formatter"
	"github.com/mixelka/tempmailbot/internal/mailbox"
	"github.com/mixelka/tempmailbot/internal/mailtm"
	appmodels "github.com/mixelka/tempmailbot/pkg/models"
)

// handleStart handles /start and /help
func (b *Bot) handleStart(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message
	b.sendMessage(ctx, msg.Chat.ID, "Выбери действие.", formatter.MainKeyboard())
}

// handleHistory handles /history
func (b *Bot) handleHistory(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	msg := update.Message

	events, err := b.db.RecentMailboxes(ctx, msg.From.ID, 5)
	if err != nil {
		b.logger.Error("failed to load history", "error", err)
		b.sendMessage(ctx, msg.Chat.ID, "Не удалось загрузить историю. Попробуйте позже.", nil)
		return
	}

	addresses := make([]string, 0, len(events))
	for _, e := range events {
		addresses = append(addresses, e.Address)
	}

	b.sendMessage(ctx, msg.Chat.ID, b.formatter.FormatHistory(addresses), formatter.MainKeyboard())
}

// handleCallback dispatches inline button callbacks
func (b *Bot) handleCallback(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	b.answerCallback(ctx, callback.ID, "")

	data, err := formatter.DecodeCallback(callback.Data)
	if err != nil {
		b.logger.Error("failed to decode callback", "error", err, "data", callback.Data)
		return
	}

	userID := callback.From.ID
	chatID, messageID, ok := callbackMessageRef(callback)
	if !ok {
		return
	}

	switch data.Action {
	case appmodels.CallbackMenu:
		b.editMessage(ctx, chatID, messageID, "Выбери действие.", formatter.MainKeyboard())
	case appmodels.CallbackNewMailbox:
		b.handleNewMailbox(ctx, userID, chatID, messageID)
	case appmodels.CallbackCurrentMailbox:
		b.handleCurrentMailbox(ctx, userID, chatID, messageID)
	case appmodels.CallbackFetchCodes:
		b.handleFetchCodes(ctx, userID, chatID, messageID)
	default:
		b.logger.Debug("unknown callback action", "action", data.Action)
	}
}

// handleNewMailbox creates a mailbox and replaces any previous session
func (b *Bot) handleNewMailbox(ctx context.Context, userID, chatID int64, messageID int) {
	sess, err := b.mailboxes.CreateMailbox(ctx, userID)
	if err != nil {
		b.logger.Error("failed to create mailbox", "error", err, "user_id", userID)
		b.editMessage(ctx, chatID, messageID, providerErrorText(err), formatter.MainKeyboard())
		return
	}

	b.editMessage(ctx, chatID, messageID,
		b.formatter.FormatMailboxCreated(sess.Address), formatter.MainKeyboard())
}

// handleCurrentMailbox shows the active address
func (b *Bot) handleCurrentMailbox(ctx context.Context, userID, chatID int64, messageID int) {
	sess, ok := b.mailboxes.CurrentMailbox(userID)
	if !ok {
		b.editMessage(ctx, chatID, messageID, "Почта не создана.", formatter.MainKeyboard())
		return
	}

	b.editMessage(ctx, chatID, messageID,
		b.formatter.FormatCurrentMailbox(sess.Address), formatter.MainKeyboard())
}

// handleFetchCodes runs the pipeline and renders the result tuples
func (b *Bot) handleFetchCodes(ctx context.Context, userID, chatID int64, messageID int) {
	results, err := b.mailboxes.FetchCodes(ctx, userID)
	switch {
	case errors.Is(err, mailbox.ErrNoSession):
		b.editMessage(ctx, chatID, messageID, "Сначала создай почту.", formatter.MainKeyboard())
		return
	case errors.Is(err, mailbox.ErrNoMessages):
		b.editMessage(ctx, chatID, messageID, "Писем пока нет.", formatter.MainKeyboard())
		return
	case err != nil:
		b.logger.Error("failed to fetch codes", "error", err, "user_id", userID)
		b.editMessage(ctx, chatID, messageID, providerErrorText(err), formatter.MainKeyboard())
		return
	}

	b.editMessage(ctx, chatID, messageID,
		b.formatter.FormatCodeResults(results), formatter.BackKeyboard())
}

// providerErrorText maps the provider error taxonomy to a user-facing message
func providerErrorText(err error) string {
	switch {
	case errors.Is(err, mailtm.ErrAuthFailed):
		return "Сессия недействительна. Создайте почту заново."
	case errors.Is(err, mailtm.ErrRejected):
		return "Сервис отклонил запрос. Попробуйте создать почту ещё раз."
	default:
		return "Почтовый сервис недоступен. Попробуйте позже."
	}
}
