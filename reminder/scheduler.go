package reminder

import (
	"context"
	"time"

	"food-picker/models"

	"github.com/rs/zerolog/log"
)

// Broadcaster delivers the reminder for one meal to every configured chat.
type Broadcaster interface {
	Broadcast(ctx context.Context, slot models.MenuType) error
}

// Scheduler waits for each slot of a Schedule and broadcasts it. Delivery is
// best effort: a failed broadcast is logged and the next slot is awaited.
type Scheduler struct {
	schedule    Schedule
	broadcaster Broadcaster

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func NewScheduler(schedule Schedule, b Broadcaster) *Scheduler {
	return &Scheduler{
		schedule:    schedule,
		broadcaster: b,
		now:         time.Now,
		after:       time.After,
	}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	if len(s.schedule) == 0 {
		return
	}
	for _, slot := range s.schedule {
		log.Info().Str("menu", string(slot.MenuType)).Str("at", slot.Clock.String()).
			Str("cron", slot.Clock.CronSpec()).Msg("reminder scheduled")
	}

	for ctx.Err() == nil {
		now := s.now()
		slot, at := s.schedule.Next(now)
		select {
		case <-ctx.Done():
			return
		case <-s.after(at.Sub(now)):
		}

		if err := s.broadcaster.Broadcast(ctx, slot.MenuType); err != nil {
			log.Error().Err(err).Str("menu", string(slot.MenuType)).Msg("reminder broadcast failed")
			continue
		}
		log.Debug().Str("menu", string(slot.MenuType)).Msg("reminder sent")
	}
}
