package domain

import (
	"context"
	"time"

	"roombot/internal/backend"
	"roombot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StateRepository interface {
	GetState(ctx context.Context, userID int64) (*models.FormState, error)
	SetState(ctx context.Context, state *models.FormState) error
	ClearState(ctx context.Context, userID int64) error
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type StateManager interface {
	GetFormState(ctx context.Context, userID int64) (*models.FormState, error)
	SetFormState(ctx context.Context, userID int64, step string, fields map[string]interface{}) error
	ClearFormState(ctx context.Context, userID int64) error
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetSelf() tgbotapi.User
	StopReceivingUpdates()
}

type TelegramService interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	SendMessage(chatID int64, text string) (tgbotapi.Message, error)
	SendMarkdown(chatID int64, text string) (tgbotapi.Message, error)
	SendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) (tgbotapi.Message, error)
	SendDocument(chatID int64, filePath string) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetSelf() tgbotapi.User
	StopReceivingUpdates()
}

// BookingClient — операции REST-бэкенда, которыми пользуется бот.
type BookingClient interface {
	CreateUser(ctx context.Context, username string) (*backend.Reply, error)
	CreateRoom(ctx context.Context, roomName string, capacity int) (*backend.Reply, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*backend.Reply, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// BookingService проверяет заявку локально и отправляет ее бэкенду.
type BookingService interface {
	Validate(bookedNum int, room models.Room, start, end time.Time) error
	Submit(ctx context.Context, userID int64, room models.Room, bookedNum int, start, end time.Time) (*backend.Reply, error)
}
