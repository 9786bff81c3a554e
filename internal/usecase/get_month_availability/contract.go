package get_month_availability

import (
	"context"
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// GetSlotsByDateRange возвращает сконфигурированные слоты по датам диапазона
	// Отсутствующая в карте дата не имеет слотов (студия закрыта)
	GetSlotsByDateRange(ctx context.Context, startDate, endDate time.Time) (map[string][]types.TimeString, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOccupiedSlots возвращает занятые (дата, время) пары за период
	GetOccupiedSlots(ctx context.Context, startDate, endDate time.Time) ([]domain.DateSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
