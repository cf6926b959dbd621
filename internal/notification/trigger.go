package notification

import (
	"time"

	"github.com/limbo/mindful/pkg/entity"
)

// Trigger fires at Hour:Minute:Second local time, every day when Repeats is set.
type Trigger struct {
	Hour    int
	Minute  int
	Second  int
	Repeats bool
}

func DailyTrigger(at entity.TimeOfDay) Trigger {
	return Trigger{Hour: at.Hour, Minute: at.Minute, Second: 0, Repeats: true}
}

// Next returns the first fire time strictly after now, in now's location.
func (t Trigger) Next(now time.Time) time.Time {
	y, m, d := now.Date()
	next := time.Date(y, m, d, t.Hour, t.Minute, t.Second, 0, now.Location())
	if !next.After(now) {
		next = time.Date(y, m, d+1, t.Hour, t.Minute, t.Second, 0, now.Location())
	}
	return next
}
