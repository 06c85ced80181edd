package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

// handleExport выгружает текущий список броней в Excel и отправляет
// файл документом.
func (b *Bot) handleExport(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	filePath, err := b.exportToExcel(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("export failed")
		b.sendMessage(chatID, "❌ Не удалось сформировать экспорт.")
		return
	}

	if _, err := b.tgService.SendDocument(chatID, filePath); err != nil {
		b.logger.Error().Err(err).Str("file_path", filePath).Msg("Failed to send export")
		b.sendMessage(chatID, "❌ Не удалось отправить файл экспорта.")
	}
}

// exportToExcel создает Excel файл с данными о бронированиях
func (b *Bot) exportToExcel(ctx context.Context) (string, error) {
	// Создаем папку для экспорта, если не существует
	if err := os.MkdirAll(b.config.Exports.Path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	// Свежие данные бэкенда, как и для любого экрана
	v, err := b.fetchViewState(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching data: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Брони"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"№ брони", "Кто", "Комната", "Человек", "Начало", "Окончание"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, booking := range v.Bookings {
		username, ok := v.UserNamesByID[booking.UserID]
		if !ok {
			username = "Unknown"
		}
		roomName := "Unknown"
		if room, ok := v.RoomsByID[booking.RoomID]; ok {
			roomName = room.RoomName
		}

		row := i + 2
		values := []any{
			booking.BookingID,
			username,
			roomName,
			booking.BookedNum,
			formatTimestamp(booking.StartDatetime),
			formatTimestamp(booking.EndDatetime),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, val)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "F", 20)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	filePath := filepath.Join(b.config.Exports.Path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	b.logger.Info().Str("file_path", filePath).Msg("Excel file created")
	return filePath, nil
}
