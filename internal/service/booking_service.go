package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roombot/internal/backend"
	"roombot/internal/domain"
	"roombot/internal/models"

	"github.com/rs/zerolog"
)

var (
	// ErrStartAfterEnd — время начала не раньше времени окончания.
	ErrStartAfterEnd = errors.New("start time is not before end time")

	// ErrOutsideHours — интервал выходит за рабочие часы 9:00-20:00.
	ErrOutsideHours = errors.New("outside operating hours")
)

// CapacityError — заявлено больше человек, чем вмещает комната.
type CapacityError struct {
	RoomName string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("room %s holds at most %d people", e.RoomName, e.Capacity)
}

// BookingService повторяет на клиенте простые правила бэкенда, чтобы
// пользователь получал отказ до сетевого запроса. Бэкенд остается
// авторитетным: конфликты броней проверяет только он.
type BookingService struct {
	client domain.BookingClient
	logger *zerolog.Logger
}

func NewBookingService(client domain.BookingClient, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		client: client,
		logger: logger,
	}
}

// Validate проверяет заявку в фиксированном порядке и останавливается на
// первом нарушении: вместимость, порядок времени, рабочие часы.
func (s *BookingService) Validate(bookedNum int, room models.Room, start, end time.Time) error {
	if bookedNum > room.Capacity {
		return &CapacityError{RoomName: room.RoomName, Capacity: room.Capacity}
	}

	startMin := minuteOfDay(start)
	endMin := minuteOfDay(end)

	if startMin >= endMin {
		return ErrStartAfterEnd
	}

	if startMin < models.OpenHour*60 || endMin > models.CloseHour*60 {
		return ErrOutsideHours
	}

	return nil
}

// Submit валидирует заявку и при успехе отправляет ее бэкенду.
// При локальном отказе сетевой запрос не выполняется.
func (s *BookingService) Submit(
	ctx context.Context,
	userID int64,
	room models.Room,
	bookedNum int,
	start, end time.Time,
) (*backend.Reply, error) {
	if err := s.Validate(bookedNum, room, start, end); err != nil {
		return nil, err
	}

	req := models.BookingRequest{
		UserID:        userID,
		RoomID:        room.RoomID,
		BookedNum:     bookedNum,
		StartDatetime: start.Format(models.TimestampLayout),
		EndDatetime:   end.Format(models.TimestampLayout),
	}

	reply, err := s.client.CreateBooking(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Int64("room_id", room.RoomID).Msg("booking submit failed")
		return nil, err
	}

	return reply, nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
