package models

const (
	StateMainMenu       = "main_menu"
	StateEnterUsername  = "enter_username"
	StateEnterRoomName  = "enter_room_name"
	StateEnterCapacity  = "enter_capacity"
	StateSelectUser     = "select_user"
	StateSelectRoom     = "select_room"
	StateEnterHeadcount = "enter_headcount"
	StateEnterDate      = "enter_date"
	StateEnterStart     = "enter_start_time"
	StateEnterEnd       = "enter_end_time"
)

const (
	// OpenHour и CloseHour — рабочие часы переговорных
	OpenHour  = 9
	CloseHour = 20

	// MaxNameLength ограничение длины имени пользователя и комнаты
	MaxNameLength = 12

	// MinBookedNum минимальное количество человек в брони
	MinBookedNum = 1

	// DefaultRedisTTL время жизни состояния формы в Redis
	DefaultRedisTTL = 24 * 60 * 60 // 24 часа в секундах

	// RateLimitMessages количество сообщений в окне
	RateLimitMessages = 20

	// RateLimitWindow окно ограничения частоты сообщений
	RateLimitWindow = 60 // 1 минута в секундах
)

const (
	// TimestampLayout — ISO-8601 без зоны, формат обмена с бэкендом
	TimestampLayout = "2006-01-02T15:04:05"

	// DisplayTimeLayout — формат вывода времени в списках
	DisplayTimeLayout = "2006/01/02 15:04"

	// DateInputLayout — формат ввода даты пользователем
	DateInputLayout = "02.01.2006"

	// TimeInputLayout — формат ввода времени пользователем
	TimeInputLayout = "15:04"
)
