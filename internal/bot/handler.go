package bot

import (
	"context"

	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	userID := update.Message.From.ID
	text := update.Message.Text
	l := zerolog.Ctx(ctx)

	if b.metrics != nil {
		b.metrics.MessagesProcessed.Inc()
	}

	l.Debug().
		Int64("user_id", userID).
		Str("username", update.Message.From.UserName).
		Str("text", text).
		Msg("Handling message")

	// Сброс в главное меню
	if text == "/start" || text == btnCancel || text == btnBack {
		b.clearFormState(ctx, userID)
		b.handleMainMenu(ctx, update)
		return
	}

	if b.handleMenuCommands(ctx, update, text) {
		return
	}

	state := b.getFormState(ctx, userID)
	if state != nil && b.handleFormSteps(ctx, update, text, state) {
		return
	}

	b.handleMainMenu(ctx, update)
}

// handleMenuCommands обрабатывает кнопки главного меню
func (b *Bot) handleMenuCommands(ctx context.Context, update tgbotapi.Update, text string) bool {
	switch text {
	case btnRegisterUser:
		b.startUserRegistration(ctx, update)
		return true

	case btnRegisterRoom:
		b.startRoomRegistration(ctx, update)
		return true

	case btnOverview:
		b.showOverview(ctx, update)
		return true

	case btnNewBooking:
		b.startBooking(ctx, update)
		return true

	case btnExport:
		b.handleExport(ctx, update)
		return true
	}
	return false
}

// handleFormSteps обрабатывает ввод пользователя в зависимости от
// текущего шага формы
func (b *Bot) handleFormSteps(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) bool {
	switch state.CurrentStep {
	case models.StateEnterUsername:
		b.handleUsernameInput(ctx, update, text)
		return true

	case models.StateEnterRoomName:
		b.handleRoomNameInput(ctx, update, text, state)
		return true

	case models.StateEnterCapacity:
		b.handleCapacityInput(ctx, update, text, state)
		return true

	case models.StateSelectUser:
		b.handleSelectUser(ctx, update, text, state)
		return true

	case models.StateSelectRoom:
		b.handleSelectRoom(ctx, update, text, state)
		return true

	case models.StateEnterHeadcount:
		b.handleHeadcountInput(ctx, update, text, state)
		return true

	case models.StateEnterDate:
		b.handleDateInput(ctx, update, text, state)
		return true

	case models.StateEnterStart:
		b.handleStartTimeInput(ctx, update, text, state)
		return true

	case models.StateEnterEnd:
		b.handleEndTimeInput(ctx, update, text, state)
		return true
	}

	return false
}
