package bot

import (
	"context"
	"time"

	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnRegisterUser = "👤 Регистрация пользователя"
	btnRegisterRoom = "🏢 Регистрация комнаты"
	btnNewBooking   = "📋 Забронировать комнату"
	btnOverview     = "📅 Комнаты и брони"
	btnExport       = "💾 Экспорт броней"
	btnCancel       = "❌ Отмена"
	btnBack         = "⬅️ Назад"
	btnToday        = "Сегодня"
)

// Вспомогательные методы для работы с состояниями форм

func (b *Bot) setFormState(ctx context.Context, userID int64, step string, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err := b.stateService.SetFormState(ctx, userID, step, fields); err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Str("step", step).Msg("Failed to set form state")
	}
}

func (b *Bot) getFormState(ctx context.Context, userID int64) *models.FormState {
	state, err := b.stateService.GetFormState(ctx, userID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to get form state")
		return nil
	}
	return state
}

func (b *Bot) clearFormState(ctx context.Context, userID int64) {
	if err := b.stateService.ClearFormState(ctx, userID); err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to clear form state")
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if _, err := b.tgService.SendMessage(chatID, text); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (b *Bot) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) {
	if _, err := b.tgService.SendWithKeyboard(chatID, text, keyboard); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

// handleMainMenu - главное меню
func (b *Bot) handleMainMenu(ctx context.Context, update tgbotapi.Update) {
	b.setFormState(ctx, update.Message.From.ID, models.StateMainMenu, nil)
	b.sendWithKeyboard(update.Message.Chat.ID, "Добро пожаловать! Выберите действие:", mainMenuKeyboard())
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRegisterUser),
			tgbotapi.NewKeyboardButton(btnRegisterRoom),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnOverview),
			tgbotapi.NewKeyboardButton(btnNewBooking),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnExport),
		),
	)
}

// cancelKeyboard — клавиатура для шагов ввода
func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

// selectorKeyboard строит клавиатуру из подписей по две в ряд.
func selectorKeyboard(labels []string) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(labels); i += 2 {
		row := []tgbotapi.KeyboardButton{tgbotapi.NewKeyboardButton(labels[i])}
		if i+1 < len(labels) {
			row = append(row, tgbotapi.NewKeyboardButton(labels[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnCancel)))
	return tgbotapi.NewReplyKeyboard(rows...)
}

func timeKeyboard(defaultValue string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(defaultValue),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

func dateKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnToday),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
}

// parseDateInput разбирает дату формы. Дата не может быть в прошлом.
func parseDateInput(text string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if text == btnToday {
		return today, nil
	}

	date, err := time.ParseInLocation(models.DateInputLayout, text, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	if date.Before(today) {
		return time.Time{}, errPastDate
	}
	return date, nil
}

func parseTimeInput(text string) (hour, minute int, err error) {
	t, err := time.Parse(models.TimeInputLayout, text)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// combine собирает дату и время формы в одну метку времени.
func combine(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}
