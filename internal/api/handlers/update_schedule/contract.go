package update_schedule

import (
	"context"
	"time"
)

type ScheduleService interface {
	ReplaceDay(ctx context.Context, date time.Time, slots []string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
