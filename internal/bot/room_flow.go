package bot

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"roombot/internal/backend"
	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) startRoomRegistration(ctx context.Context, update tgbotapi.Update) {
	b.setFormState(ctx, update.Message.From.ID, models.StateEnterRoomName, nil)
	b.sendWithKeyboard(update.Message.Chat.ID,
		fmt.Sprintf("Введите название комнаты (до %d символов):", models.MaxNameLength),
		cancelKeyboard())
}

func (b *Bot) handleRoomNameInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	if utf8.RuneCountInString(text) > models.MaxNameLength {
		b.sendMessage(chatID, fmt.Sprintf("⚠️ Название не длиннее %d символов. Попробуйте снова:", models.MaxNameLength))
		return
	}

	fields := state.Fields
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["room_name"] = text

	b.setFormState(ctx, update.Message.From.ID, models.StateEnterCapacity, fields)
	b.sendWithKeyboard(chatID, "Введите вместимость (целое число):", cancelKeyboard())
}

func (b *Bot) handleCapacityInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	// Нижняя граница не проверяется: ее проверяет бэкенд
	capacity, err := strconv.Atoi(text)
	if err != nil {
		b.sendMessage(chatID, "⚠️ Вместимость — целое число. Попробуйте снова:")
		return
	}

	reply, err := b.client.CreateRoom(ctx, state.GetString("room_name"), capacity)
	if err != nil {
		b.logger.Error().Err(err).Msg("create room request failed")
		b.metrics.countSubmission("room", "transport_error")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	switch {
	case reply.Status == 200:
		b.metrics.countSubmission("room", "ok")
		b.finishFlow(ctx, update, "✅ Комната зарегистрирована")
	case reply.Status == 400:
		detail, ok := backend.Detail(reply.Body)
		if !ok {
			detail = "Ошибка регистрации комнаты"
		}
		b.metrics.countSubmission("room", "rejected")
		b.finishFlow(ctx, update, "⚠️ "+detail)
	default:
		b.metrics.countSubmission("room", "error")
		b.finishFlow(ctx, update, "❌ Произошла ошибка: "+backend.FormatValue(reply.Body))
	}

	b.showReplyBody(chatID, reply)
}
