package schedule

import (
	"context"
	"time"

	"github.com/velitt/Studio-BookingService/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetSlotsByDateRange(ctx context.Context, startDate, endDate time.Time) (map[string][]types.TimeString, error)
	ReplaceDaySlots(ctx context.Context, date time.Time, slots []types.TimeString) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
