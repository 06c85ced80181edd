package bot

import (
	"io"
	"testing"

	"roombot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewState(t *testing.T) {
	logger := zerolog.New(io.Discard)

	users := []models.User{
		{UserID: 1, Username: "alice"},
		{UserID: 2, Username: "bob"},
	}
	rooms := []models.Room{
		{RoomID: 3, RoomName: "R1", Capacity: 5},
	}

	v := BuildViewState(users, rooms, nil, &logger)

	assert.Equal(t, []string{"alice", "bob"}, v.UserLabels)
	assert.Equal(t, []string{"R1"}, v.RoomLabels)
	assert.Empty(t, v.DuplicateNames)

	u, ok := v.UserByLabel("bob")
	require.True(t, ok)
	assert.Equal(t, int64(2), u.UserID)

	r, ok := v.RoomByLabel("R1")
	require.True(t, ok)
	assert.Equal(t, 5, r.Capacity)

	assert.Equal(t, "alice", v.UserNamesByID[1])
	assert.Equal(t, "R1", v.RoomsByID[3].RoomName)
}

func TestBuildViewStateDuplicateNames(t *testing.T) {
	logger := zerolog.New(io.Discard)

	users := []models.User{
		{UserID: 1, Username: "alice"},
		{UserID: 2, Username: "alice"},
	}
	rooms := []models.Room{
		{RoomID: 3, RoomName: "R1", Capacity: 5},
		{RoomID: 4, RoomName: "R1", Capacity: 8},
	}

	v := BuildViewState(users, rooms, nil, &logger)

	// Подписи дубликатов несут id, выбор остается однозначным
	assert.Equal(t, []string{"alice (#1)", "alice (#2)"}, v.UserLabels)
	assert.Equal(t, []string{"R1 (#3)", "R1 (#4)"}, v.RoomLabels)
	assert.Len(t, v.DuplicateNames, 4)

	u, ok := v.UserByLabel("alice (#2)")
	require.True(t, ok)
	assert.Equal(t, int64(2), u.UserID)

	r, ok := v.RoomByLabel("R1 (#4)")
	require.True(t, ok)
	assert.Equal(t, 8, r.Capacity)

	_, ok = v.UserByLabel("alice")
	assert.False(t, ok)
}

func TestBuildViewStateEmpty(t *testing.T) {
	logger := zerolog.New(io.Discard)
	v := BuildViewState(nil, nil, nil, &logger)

	assert.Empty(t, v.UserLabels)
	assert.Empty(t, v.RoomLabels)
	assert.Empty(t, v.Bookings)
}
