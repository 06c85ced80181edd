package bot

import (
	"errors"
	"fmt"

	"roombot/internal/service"
)

var errPastDate = errors.New("date is in the past")

// isValidationError отличает локальный отказ валидации от сетевого сбоя.
func isValidationError(err error) bool {
	var capErr *service.CapacityError
	return errors.As(err, &capErr) ||
		errors.Is(err, service.ErrStartAfterEnd) ||
		errors.Is(err, service.ErrOutsideHours)
}

// getValidationMessage переводит ошибку локальной валидации заявки в
// сообщение пользователю.
func (b *Bot) getValidationMessage(err error) string {
	if err == nil {
		return ""
	}

	var capErr *service.CapacityError
	if errors.As(err, &capErr) {
		return fmt.Sprintf(
			"⚠️ Вместимость комнаты %s — %d мест. Принимаются брони не больше чем на %d человек.",
			capErr.RoomName, capErr.Capacity, capErr.Capacity,
		)
	}

	if errors.Is(err, service.ErrStartAfterEnd) {
		return "⚠️ Время начала превышает время окончания."
	}

	if errors.Is(err, service.ErrOutsideHours) {
		return "⚠️ Часы работы: с 9:00 до 20:00."
	}

	return "❌ Произошла ошибка при обработке заявки. Пожалуйста, попробуйте позже."
}
