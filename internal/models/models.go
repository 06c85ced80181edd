package models

import "time"

// FormState хранит заполняемую форму пользователя между сообщениями.
// Значения проходят через JSON при сохранении в Redis, поэтому геттеры
// принимают и float64, и строки.
type FormState struct {
	UserID      int64
	CurrentStep string
	Fields      map[string]interface{}
}

func (s *FormState) GetInt64(key string) int64 {
	if s.Fields == nil {
		return 0
	}
	val, ok := s.Fields[key]
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

func (s *FormState) GetInt(key string) int {
	return int(s.GetInt64(key))
}

func (s *FormState) GetString(key string) string {
	if s.Fields == nil {
		return ""
	}
	val, ok := s.Fields[key]
	if !ok {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func (s *FormState) GetTime(key string) time.Time {
	if s.Fields == nil {
		return time.Time{}
	}
	val, ok := s.Fields[key]
	if !ok {
		return time.Time{}
	}
	switch v := val.(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			t, err = time.Parse(TimestampLayout, v)
			if err != nil {
				return time.Time{}
			}
		}
		return t
	default:
		return time.Time{}
	}
}

// ParseTimestamp разбирает метку времени бэкенда. Принимает и наивный
// ISO-8601, и RFC3339 на случай, если бэкенд начнет отдавать зону.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
