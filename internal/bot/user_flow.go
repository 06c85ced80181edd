package bot

import (
	"context"
	"fmt"
	"unicode/utf8"

	"roombot/internal/backend"
	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const msgBackendUnreachable = "❌ Не удалось связаться с сервисом бронирования. Попробуйте позже."

func (b *Bot) startUserRegistration(ctx context.Context, update tgbotapi.Update) {
	b.setFormState(ctx, update.Message.From.ID, models.StateEnterUsername, nil)
	b.sendWithKeyboard(update.Message.Chat.ID,
		fmt.Sprintf("Введите имя пользователя (до %d символов):", models.MaxNameLength),
		cancelKeyboard())
}

func (b *Bot) handleUsernameInput(ctx context.Context, update tgbotapi.Update, text string) {
	chatID := update.Message.Chat.ID

	if utf8.RuneCountInString(text) > models.MaxNameLength {
		b.sendMessage(chatID, fmt.Sprintf("⚠️ Имя не длиннее %d символов. Попробуйте снова:", models.MaxNameLength))
		return
	}

	reply, err := b.client.CreateUser(ctx, text)
	if err != nil {
		b.logger.Error().Err(err).Msg("create user request failed")
		b.metrics.countSubmission("user", "transport_error")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	switch {
	case reply.Status == 200:
		b.metrics.countSubmission("user", "ok")
		b.finishFlow(ctx, update, "✅ Пользователь зарегистрирован")
	case reply.Status == 400:
		detail, ok := backend.Detail(reply.Body)
		if !ok {
			detail = "Ошибка регистрации пользователя"
		}
		b.metrics.countSubmission("user", "rejected")
		b.finishFlow(ctx, update, "⚠️ "+detail)
	default:
		b.metrics.countSubmission("user", "error")
		b.finishFlow(ctx, update, "❌ Произошла ошибка: "+backend.FormatValue(reply.Body))
	}

	b.showReplyBody(chatID, reply)
}

// showReplyBody показывает декодированное тело ответа как есть.
func (b *Bot) showReplyBody(chatID int64, reply *backend.Reply) {
	if _, err := b.tgService.SendMarkdown(chatID, "`"+backend.FormatValue(reply.Body)+"`"); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send reply body")
	}
}

// finishFlow завершает текущую форму: сообщение с клавиатурой меню и
// возврат в главное меню.
func (b *Bot) finishFlow(ctx context.Context, update tgbotapi.Update, message string) {
	b.setFormState(ctx, update.Message.From.ID, models.StateMainMenu, nil)
	b.sendWithKeyboard(update.Message.Chat.ID, message, mainMenuKeyboard())
}
