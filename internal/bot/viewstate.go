package bot

import (
	"fmt"

	"roombot/internal/models"

	"github.com/rs/zerolog"
)

// ViewState — снимок данных бэкенда для одного экрана бронирования.
// Строится заново на каждый цикл, между экранами ничего не кэшируется.
// Внутренние ключи — идентификаторы бэкенда; имена служат только
// подписями. Совпадающие имена получают суффикс с id, чтобы выбор
// не схлопывался по принципу "последний победил".
type ViewState struct {
	Users    []models.User
	Rooms    []models.Room
	Bookings []models.Booking

	UserLabels []string
	RoomLabels []string

	UserNamesByID map[int64]string
	RoomsByID     map[int64]models.Room

	usersByLabel map[string]models.User
	roomsByLabel map[string]models.Room

	DuplicateNames []string
}

func BuildViewState(users []models.User, rooms []models.Room, bookings []models.Booking, logger *zerolog.Logger) *ViewState {
	v := &ViewState{
		Users:         users,
		Rooms:         rooms,
		Bookings:      bookings,
		UserNamesByID: make(map[int64]string, len(users)),
		RoomsByID:     make(map[int64]models.Room, len(rooms)),
		usersByLabel:  make(map[string]models.User, len(users)),
		roomsByLabel:  make(map[string]models.Room, len(rooms)),
	}

	userNameCount := make(map[string]int, len(users))
	for _, u := range users {
		userNameCount[u.Username]++
	}
	roomNameCount := make(map[string]int, len(rooms))
	for _, r := range rooms {
		roomNameCount[r.RoomName]++
	}

	for _, u := range users {
		v.UserNamesByID[u.UserID] = u.Username

		label := u.Username
		if userNameCount[u.Username] > 1 {
			label = fmt.Sprintf("%s (#%d)", u.Username, u.UserID)
			v.DuplicateNames = append(v.DuplicateNames, u.Username)
		}
		v.UserLabels = append(v.UserLabels, label)
		v.usersByLabel[label] = u
	}

	for _, r := range rooms {
		v.RoomsByID[r.RoomID] = r

		label := r.RoomName
		if roomNameCount[r.RoomName] > 1 {
			label = fmt.Sprintf("%s (#%d)", r.RoomName, r.RoomID)
			v.DuplicateNames = append(v.DuplicateNames, r.RoomName)
		}
		v.RoomLabels = append(v.RoomLabels, label)
		v.roomsByLabel[label] = r
	}

	if len(v.DuplicateNames) > 0 && logger != nil {
		logger.Warn().Strs("names", v.DuplicateNames).Msg("duplicate display names, selector labels carry ids")
	}

	return v
}

func (v *ViewState) UserByLabel(label string) (models.User, bool) {
	u, ok := v.usersByLabel[label]
	return u, ok
}

func (v *ViewState) RoomByLabel(label string) (models.Room, bool) {
	r, ok := v.roomsByLabel[label]
	return r, ok
}
