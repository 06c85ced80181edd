package bot

import (
	"io"
	"testing"

	"roombot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2026/09/01 09:30", formatTimestamp("2026-09-01T09:30:00"))

	// Неразбираемая метка показывается как есть
	assert.Equal(t, "not-a-date", formatTimestamp("not-a-date"))
}

func TestFormatRoomList(t *testing.T) {
	got := formatRoomList([]models.Room{
		{RoomID: 3, RoomName: "R1", Capacity: 5},
	})
	assert.Contains(t, got, "R1")
	assert.Contains(t, got, "вместимость: 5 мест")
	assert.Contains(t, got, "(ID: 3)")

	assert.Contains(t, formatRoomList(nil), "Комнат пока нет")
}

func TestFormatBookingList(t *testing.T) {
	logger := zerolog.New(io.Discard)
	v := BuildViewState(
		[]models.User{{UserID: 7, Username: "alice"}},
		[]models.Room{{RoomID: 3, RoomName: "R1", Capacity: 5}},
		[]models.Booking{{
			BookingID:     1,
			UserID:        7,
			RoomID:        3,
			BookedNum:     2,
			StartDatetime: "2026-09-01T09:00:00",
			EndDatetime:   "2026-09-01T10:00:00",
		}},
		&logger,
	)

	got := formatBookingList(v)
	assert.Contains(t, got, "Бронь #1")
	assert.Contains(t, got, "alice")
	assert.Contains(t, got, "R1")
	assert.Contains(t, got, "2026/09/01 09:00 — 2026/09/01 10:00")
}

func TestFormatBookingListUnknownRefs(t *testing.T) {
	logger := zerolog.New(io.Discard)
	v := BuildViewState(nil, nil, []models.Booking{{
		BookingID: 1, UserID: 99, RoomID: 99, BookedNum: 1,
		StartDatetime: "2026-09-01T09:00:00", EndDatetime: "2026-09-01T10:00:00",
	}}, &logger)

	got := formatBookingList(v)
	assert.Contains(t, got, "Unknown")
}

func TestFormatBookingListEmpty(t *testing.T) {
	logger := zerolog.New(io.Discard)
	v := BuildViewState(nil, nil, nil, &logger)
	assert.Contains(t, formatBookingList(v), "Броней пока нет")
}
