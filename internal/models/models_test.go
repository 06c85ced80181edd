package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormStateGetters(t *testing.T) {
	state := &FormState{
		UserID:      42,
		CurrentStep: StateEnterEnd,
		Fields: map[string]interface{}{
			"user_id":    int64(7),
			"capacity":   5,
			"room_name":  "R1",
			"start_hour": float64(9),
		},
	}

	assert.Equal(t, int64(7), state.GetInt64("user_id"))
	assert.Equal(t, 5, state.GetInt("capacity"))
	assert.Equal(t, "R1", state.GetString("room_name"))

	// Значение, побывавшее в JSON, приходит как float64
	assert.Equal(t, 9, state.GetInt("start_hour"))

	assert.Equal(t, int64(0), state.GetInt64("absent"))
	assert.Equal(t, "", state.GetString("absent"))
	assert.Equal(t, "", state.GetString("capacity"))
}

func TestFormStateGettersAfterJSONRoundTrip(t *testing.T) {
	state := &FormState{
		UserID:      42,
		CurrentStep: StateEnterDate,
		Fields: map[string]interface{}{
			"user_id":    int64(7),
			"booked_num": 3,
			"username":   "alice",
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var restored FormState
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, int64(7), restored.GetInt64("user_id"))
	assert.Equal(t, 3, restored.GetInt("booked_num"))
	assert.Equal(t, "alice", restored.GetString("username"))
}

func TestFormStateNilFields(t *testing.T) {
	state := &FormState{UserID: 42}

	assert.Equal(t, int64(0), state.GetInt64("user_id"))
	assert.Equal(t, "", state.GetString("username"))
	assert.True(t, state.GetTime("date").IsZero())
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2026-09-01T09:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), got)

	got, err = ParseTimestamp("2026-09-01T09:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("завтра")
	assert.Error(t, err)
}

func TestBookingRequestJSON(t *testing.T) {
	req := BookingRequest{
		UserID:        7,
		RoomID:        3,
		BookedNum:     2,
		StartDatetime: "2026-09-01T09:00:00",
		EndDatetime:   "2026-09-01T10:00:00",
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, float64(7), m["user_id"])
	assert.Equal(t, float64(3), m["room_id"])
	assert.Equal(t, float64(2), m["booked_num"])
	assert.Equal(t, "2026-09-01T09:00:00", m["start_datetime"])
	assert.Equal(t, "2026-09-01T10:00:00", m["end_datetime"])
}
