package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DecodeBody разбирает тело ответа бэкенда. Любой сбой превращается в
// единый объект {"error": ...}, наружу ошибки не выходят — благодаря
// этому ошибки декодирования и ошибки бэкенда ({"detail": ...})
// рендерятся одним путем.
func DecodeBody(status int, body []byte) any {
	if strings.TrimSpace(string(body)) == "" {
		return map[string]any{"error": fmt.Sprintf("Empty response: HTTP %d", status)}
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return map[string]any{"error": fmt.Sprintf("Invalid JSON response: %s", string(body))}
	}
	return v
}

// DecodeResponse читает и декодирует тело HTTP-ответа.
func DecodeResponse(resp *http.Response) any {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("Unexpected error: %s", err.Error())}
	}
	return DecodeBody(resp.StatusCode, body)
}

// IsErrorValue сообщает, является ли значение объектом ошибки декодера.
func IsErrorValue(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m["error"]
	return ok
}

// Detail достает поле detail из ответа бэкенда на 4xx.
func Detail(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	detail, ok := m["detail"].(string)
	return detail, ok
}

// FormatValue сериализует декодированное значение для показа пользователю.
func FormatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
