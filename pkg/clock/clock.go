package clock

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Clock источник текущего времени в часовом поясе сервиса
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New создает часы для часового пояса name ("" или "UTC" - UTC)
func New(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// Fixed возвращает часы, всегда показывающие t. Для тестов
func Fixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

// Now текущий момент в часовом поясе часов
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Location часовой пояс часов
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Today календарная дата "сегодня" в часовом поясе часов
func (c *Clock) Today() time.Time {
	return types.DateOnly(c.Now())
}
