package service

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	sent []tgbotapi.Chattable
}

func (m *mockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.sent = append(m.sent, c)
	return tgbotapi.Message{MessageID: len(m.sent)}, nil
}

func (m *mockSender) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *mockSender) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return make(tgbotapi.UpdatesChannel)
}

func (m *mockSender) GetSelf() tgbotapi.User {
	return tgbotapi.User{UserName: "roombot"}
}

func (m *mockSender) StopReceivingUpdates() {}

func TestSendMessage(t *testing.T) {
	sender := &mockSender{}
	svc := NewTelegramService(sender, 100, 10)

	_, err := svc.SendMessage(42, "привет")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "привет", msg.Text)
	assert.Empty(t, msg.ParseMode)
}

func TestSendMarkdown(t *testing.T) {
	sender := &mockSender{}
	svc := NewTelegramService(sender, 100, 10)

	_, err := svc.SendMarkdown(42, "`{\"detail\":\"ok\"}`")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, parseModeMarkdown, msg.ParseMode)
}

func TestSendWithKeyboard(t *testing.T) {
	sender := &mockSender{}
	svc := NewTelegramService(sender, 100, 10)

	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton("OK")),
	)
	_, err := svc.SendWithKeyboard(42, "выберите", keyboard)
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, keyboard, msg.ReplyMarkup)
}

func TestSendDocument(t *testing.T) {
	sender := &mockSender{}
	svc := NewTelegramService(sender, 100, 10)

	_, err := svc.SendDocument(42, "exports/bookings.xlsx")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	doc, ok := sender.sent[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, tgbotapi.FilePath("exports/bookings.xlsx"), doc.File)
}

func TestLimiterDefaults(t *testing.T) {
	svc := NewTelegramService(&mockSender{}, 0, 0)
	require.NotNil(t, svc.limiter)
	assert.Equal(t, float64(20), float64(svc.limiter.Limit()))
	assert.Equal(t, 5, svc.limiter.Burst())
}
