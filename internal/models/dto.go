package models

// DTO для обмена с бэкендом бронирования. Все идентификаторы назначает
// бэкенд, клиент их не создает и не изменяет.

type User struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Room struct {
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
	Capacity int    `json:"capacity"`
}

// Booking хранит start/end как строки: бэкенд отдает наивный ISO-8601
// без зоны, который time.Time из encoding/json не принимает.
type Booking struct {
	BookingID     int64  `json:"booking_id"`
	UserID        int64  `json:"user_id"`
	RoomID        int64  `json:"room_id"`
	BookedNum     int    `json:"booked_num"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}

// BookingRequest — тело POST /bookings.
type BookingRequest struct {
	UserID        int64  `json:"user_id"`
	RoomID        int64  `json:"room_id"`
	BookedNum     int    `json:"booked_num"`
	StartDatetime string `json:"start_datetime"`
	EndDatetime   string `json:"end_datetime"`
}
