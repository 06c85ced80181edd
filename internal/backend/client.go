package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"roombot/internal/models"

	"github.com/rs/zerolog"
)

// Observer получает сведения о выполненном запросе (для метрик).
type Observer func(method, endpoint string, status int, elapsed time.Duration)

// Client — синхронный клиент REST-бэкенда бронирования. Запросы не
// повторяются и не ограничиваются таймаутом: бэкенд авторитетен, сетевые
// сбои отдаются вызывающему как есть.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zerolog.Logger
	observer   Observer
}

// Reply — статус и уже декодированное тело ответа.
type Reply struct {
	Status int
	Body   any
}

func NewClient(baseURL string, logger *zerolog.Logger, observer Observer) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
		observer:   observer,
	}
}

// CreateUser регистрирует пользователя.
func (c *Client) CreateUser(ctx context.Context, username string) (*Reply, error) {
	return c.post(ctx, "/users", map[string]any{"username": username})
}

// CreateRoom регистрирует переговорную.
func (c *Client) CreateRoom(ctx context.Context, roomName string, capacity int) (*Reply, error) {
	return c.post(ctx, "/rooms", map[string]any{"room_name": roomName, "capacity": capacity})
}

// CreateBooking отправляет заявку на бронирование.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*Reply, error) {
	return c.post(ctx, "/bookings", req)
}

// ListUsers возвращает список пользователей. Ответ, не являющийся
// списком, деградирует до пустого среза.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	reply, err := c.get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return listOf[models.User](reply.Body), nil
}

// ListRooms возвращает список переговорных.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	reply, err := c.get(ctx, "/rooms")
	if err != nil {
		return nil, err
	}
	return listOf[models.Room](reply.Body), nil
}

// ListBookings возвращает список бронирований.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	reply, err := c.get(ctx, "/bookings")
	if err != nil {
		return nil, err
	}
	return listOf[models.Booking](reply.Body), nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*Reply, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path)
}

func (c *Client) get(ctx context.Context, path string) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	return c.do(req, path)
}

func (c *Client) do(req *http.Request, endpoint string) (*Reply, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортный сбой: единственный класс ошибок, который не
		// сворачивается в объект декодера.
		return nil, err
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer(req.Method, endpoint, resp.StatusCode, elapsed)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("backend request")

	return &Reply{Status: resp.StatusCode, Body: DecodeResponse(resp)}, nil
}

// listOf перекладывает декодированный список в типизированные DTO.
// Всё, что списком не является, превращается в пустой срез.
func listOf[T any](decoded any) []T {
	items, ok := decoded.([]any)
	if !ok {
		return []T{}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
