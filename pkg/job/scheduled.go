package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"
)

// scheduledHandler is the Handle signature for periodic tasks. They receive
// no payload; the schedule itself is the trigger.
type scheduledHandler func(ctx context.Context) error

// scheduleConfig pairs a task name with its cron expression and handler.
type scheduleConfig struct {
	handler  scheduledHandler
	name     string
	schedule string
}

// scheduledTaskExecutor adapts a scheduledHandler to taskExecutor.
// Any payload is ignored.
type scheduledTaskExecutor struct {
	handler scheduledHandler
}

func (e *scheduledTaskExecutor) Execute(ctx context.Context, _ json.RawMessage) error {
	return e.handler(ctx)
}

// cronScheduleAdapter bridges robfig/cron schedules to River's
// PeriodicSchedule interface.
type cronScheduleAdapter struct {
	schedule cron.Schedule
}

func (a *cronScheduleAdapter) Next(current time.Time) time.Time {
	return a.schedule.Next(current)
}

// parseCronSchedule parses a standard 5-field cron expression
// (minute hour day month weekday).
func parseCronSchedule(expr string) (river.PeriodicSchedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &cronScheduleAdapter{schedule: schedule}, nil
}
