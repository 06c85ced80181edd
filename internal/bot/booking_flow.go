package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"roombot/internal/backend"
	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const dateFieldLayout = "2006-01-02"

// fetchViewState опрашивает бэкенд: три последовательных запроса, без
// кэширования между экранами.
func (b *Bot) fetchViewState(ctx context.Context) (*ViewState, error) {
	users, err := b.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := b.client.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := b.client.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	return BuildViewState(users, rooms, bookings, b.logger), nil
}

// showOverview показывает списки комнат и броней
func (b *Bot) showOverview(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	v, err := b.fetchViewState(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("overview fetch failed")
		b.sendMessage(chatID, msgBackendUnreachable)
		return
	}

	b.sendMessage(chatID, formatRoomList(v.Rooms))
	b.sendMessage(chatID, formatBookingList(v))
}

func (b *Bot) startBooking(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	v, err := b.fetchViewState(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("booking page fetch failed")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	b.sendMessage(chatID, formatRoomList(v.Rooms))
	b.sendMessage(chatID, formatBookingList(v))

	if len(v.Users) == 0 || len(v.Rooms) == 0 {
		b.finishFlow(ctx, update, "⚠️ Сначала зарегистрируйте пользователя и комнату.")
		return
	}

	b.setFormState(ctx, update.Message.From.ID, models.StateSelectUser, nil)
	b.sendWithKeyboard(chatID, "Кто бронирует?", selectorKeyboard(v.UserLabels))
}

func (b *Bot) handleSelectUser(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	users, err := b.client.ListUsers(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("users fetch failed")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	v := BuildViewState(users, nil, nil, b.logger)
	user, ok := v.UserByLabel(text)
	if !ok {
		b.sendWithKeyboard(chatID, "⚠️ Выберите пользователя кнопкой:", selectorKeyboard(v.UserLabels))
		return
	}

	rooms, err := b.client.ListRooms(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("rooms fetch failed")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}
	rv := BuildViewState(nil, rooms, nil, b.logger)

	fields := state.Fields
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["user_id"] = user.UserID
	fields["username"] = user.Username

	b.setFormState(ctx, update.Message.From.ID, models.StateSelectRoom, fields)
	b.sendWithKeyboard(chatID, "Какую комнату?", selectorKeyboard(rv.RoomLabels))
}

func (b *Bot) handleSelectRoom(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	rooms, err := b.client.ListRooms(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("rooms fetch failed")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	v := BuildViewState(nil, rooms, nil, b.logger)
	room, ok := v.RoomByLabel(text)
	if !ok {
		b.sendWithKeyboard(chatID, "⚠️ Выберите комнату кнопкой:", selectorKeyboard(v.RoomLabels))
		return
	}

	fields := state.Fields
	fields["room_id"] = room.RoomID
	fields["room_name"] = room.RoomName
	fields["capacity"] = room.Capacity

	b.setFormState(ctx, update.Message.From.ID, models.StateEnterHeadcount, fields)
	b.sendWithKeyboard(chatID, "Сколько человек?", cancelKeyboard())
}

func (b *Bot) handleHeadcountInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	num, err := strconv.Atoi(text)
	if err != nil || num < models.MinBookedNum {
		b.sendMessage(chatID, fmt.Sprintf("⚠️ Количество человек — целое число не меньше %d. Попробуйте снова:", models.MinBookedNum))
		return
	}

	fields := state.Fields
	fields["booked_num"] = num

	b.setFormState(ctx, update.Message.From.ID, models.StateEnterDate, fields)
	b.sendWithKeyboard(chatID, "На какую дату? (ДД.ММ.ГГГГ)", dateKeyboard())
}

func (b *Bot) handleDateInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	date, err := parseDateInput(text, time.Now())
	if err == errPastDate {
		b.sendMessage(chatID, "⚠️ Дата не может быть в прошлом. Попробуйте снова:")
		return
	}
	if err != nil {
		b.sendMessage(chatID, "⚠️ Введите дату в формате ДД.ММ.ГГГГ:")
		return
	}

	fields := state.Fields
	fields["date"] = date.Format(dateFieldLayout)

	b.setFormState(ctx, update.Message.From.ID, models.StateEnterStart, fields)
	b.sendWithKeyboard(chatID, "Время начала? (ЧЧ:ММ)", timeKeyboard("09:00"))
}

func (b *Bot) handleStartTimeInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	hour, minute, err := parseTimeInput(text)
	if err != nil {
		b.sendMessage(chatID, "⚠️ Введите время в формате ЧЧ:ММ:")
		return
	}

	fields := state.Fields
	fields["start_hour"] = hour
	fields["start_minute"] = minute

	b.setFormState(ctx, update.Message.From.ID, models.StateEnterEnd, fields)
	b.sendWithKeyboard(chatID, "Время окончания? (ЧЧ:ММ)", timeKeyboard("20:00"))
}

func (b *Bot) handleEndTimeInput(ctx context.Context, update tgbotapi.Update, text string, state *models.FormState) {
	chatID := update.Message.Chat.ID

	hour, minute, err := parseTimeInput(text)
	if err != nil {
		b.sendMessage(chatID, "⚠️ Введите время в формате ЧЧ:ММ:")
		return
	}

	date, err := time.ParseInLocation(dateFieldLayout, state.GetString("date"), time.Local)
	if err != nil {
		b.logger.Error().Err(err).Str("date", state.GetString("date")).Msg("corrupt form date")
		b.finishFlow(ctx, update, "❌ Форма устарела, начните заново.")
		return
	}

	start := combine(date, state.GetInt("start_hour"), state.GetInt("start_minute"))
	end := combine(date, hour, minute)

	room := models.Room{
		RoomID:   state.GetInt64("room_id"),
		RoomName: state.GetString("room_name"),
		Capacity: state.GetInt("capacity"),
	}

	b.submitBooking(ctx, update, state.GetInt64("user_id"), room, state.GetInt("booked_num"), start, end)
}

func (b *Bot) submitBooking(
	ctx context.Context,
	update tgbotapi.Update,
	userID int64,
	room models.Room,
	bookedNum int,
	start, end time.Time,
) {
	reply, err := b.bookingService.Submit(ctx, userID, room, bookedNum, start, end)
	if err != nil {
		if isValidationError(err) {
			// Локальный отказ: запрос к бэкенду не выполнялся
			b.metrics.countSubmission("booking", "rejected_local")
			b.finishFlow(ctx, update, b.getValidationMessage(err))
			return
		}
		b.logger.Error().Err(err).Msg("create booking request failed")
		b.metrics.countSubmission("booking", "transport_error")
		b.finishFlow(ctx, update, msgBackendUnreachable)
		return
	}

	switch {
	case reply.Status == 200:
		b.metrics.countSubmission("booking", "ok")
		b.finishFlow(ctx, update, "✅ Бронь создана")
	case reply.Status == 404 && isAlreadyBooked(reply):
		b.metrics.countSubmission("booking", "conflict")
		b.finishFlow(ctx, update, "⚠️ Указанное время уже занято.")
	default:
		b.metrics.countSubmission("booking", "error")
		b.finishFlow(ctx, update, "❌ Ошибка бронирования: "+backend.FormatValue(reply.Body))
	}
}

func isAlreadyBooked(reply *backend.Reply) bool {
	detail, ok := backend.Detail(reply.Body)
	return ok && detail == "Already booked"
}
