// Package reminder fires the daily breakfast, lunch and dinner reminders.
package reminder

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"food-picker/models"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ConfigError reports a reminder time that is not a 24-hour HH:mm value.
// It is fatal at startup.
type ConfigError struct {
	Slot  models.MenuType
	Value string
}

func (e *ConfigError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("invalid reminder time %q: want HH:mm between 00:00 and 23:59", e.Value)
	}
	return fmt.Sprintf("invalid %s reminder time %q: want HH:mm between 00:00 and 23:59", e.Slot, e.Value)
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts exactly "HH:mm" with a two-digit hour 00-23 and
// minute 00-59.
func ParseClock(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, &ConfigError{Value: s}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// CronSpec renders the clock as a six-field cron expression with seconds,
// firing once a day: "0 M H * * *".
func (c Clock) CronSpec() string {
	return fmt.Sprintf("0 %d %d * * *", c.Minute, c.Hour)
}

// Next returns the first time strictly after now at this clock, in now's
// location.
func (c Clock) Next(now time.Time) time.Time {
	y, mo, d := now.Date()
	at := time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, now.Location())
	if !at.After(now) {
		at = time.Date(y, mo, d+1, c.Hour, c.Minute, 0, 0, now.Location())
	}
	return at
}

// Slot is one daily reminder.
type Slot struct {
	MenuType models.MenuType
	Clock    Clock
}

// Schedule holds the three meal reminders.
type Schedule []Slot

// NewSchedule validates the three configured times.
func NewSchedule(breakfast, lunch, dinner string) (Schedule, error) {
	raw := []struct {
		t models.MenuType
		v string
	}{
		{models.MenuBreakfast, breakfast},
		{models.MenuLunch, lunch},
		{models.MenuDinner, dinner},
	}
	sched := make(Schedule, 0, len(raw))
	for _, r := range raw {
		c, err := ParseClock(r.v)
		if err != nil {
			return nil, &ConfigError{Slot: r.t, Value: r.v}
		}
		sched = append(sched, Slot{MenuType: r.t, Clock: c})
	}
	return sched, nil
}

// Next returns the slot that fires first after now and when it fires.
// Ties go to the earlier slot in the schedule.
func (s Schedule) Next(now time.Time) (Slot, time.Time) {
	var best Slot
	var bestAt time.Time
	for i, slot := range s {
		at := slot.Clock.Next(now)
		if i == 0 || at.Before(bestAt) {
			best, bestAt = slot, at
		}
	}
	return best, bestAt
}
