package bot

import (
	"fmt"
	"strings"

	"roombot/internal/models"
)

// formatTimestamp переводит метку бэкенда в вид YYYY/MM/DD HH:MM.
// Неразбираемое значение показывается как есть.
func formatTimestamp(s string) string {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		return s
	}
	return t.Format(models.DisplayTimeLayout)
}

func formatRoomList(rooms []models.Room) string {
	var sb strings.Builder
	sb.WriteString("🏢 Комнаты:\n\n")

	if len(rooms) == 0 {
		sb.WriteString("Комнат пока нет\n")
		return sb.String()
	}

	for _, room := range rooms {
		sb.WriteString(fmt.Sprintf("🔹 %s — вместимость: %d мест (ID: %d)\n", room.RoomName, room.Capacity, room.RoomID))
	}
	return sb.String()
}

func formatBookingList(v *ViewState) string {
	var sb strings.Builder
	sb.WriteString("📋 Брони:\n\n")

	if len(v.Bookings) == 0 {
		sb.WriteString("Броней пока нет\n")
		return sb.String()
	}

	for _, booking := range v.Bookings {
		username, ok := v.UserNamesByID[booking.UserID]
		if !ok {
			username = "Unknown"
		}
		roomName := "Unknown"
		if room, ok := v.RoomsByID[booking.RoomID]; ok {
			roomName = room.RoomName
		}

		sb.WriteString(fmt.Sprintf("Бронь #%d\n", booking.BookingID))
		sb.WriteString(fmt.Sprintf("   Кто: %s\n", username))
		sb.WriteString(fmt.Sprintf("   Комната: %s\n", roomName))
		sb.WriteString(fmt.Sprintf("   Человек: %d\n", booking.BookedNum))
		sb.WriteString(fmt.Sprintf("   Время: %s — %s\n\n",
			formatTimestamp(booking.StartDatetime), formatTimestamp(booking.EndDatetime)))
	}
	return sb.String()
}
