package create_booking

import (
	"context"
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/internal/integrations/notifier"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	// GetByUserID получает клиента; отсутствие - отдельная ошибка репозитория
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
	// Upsert создает клиента или обновляет имя/телефон, не трогая member_code
	// и is_blacklisted существующей записи
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// GetDaySlots возвращает сконфигурированные слоты даты (пусто = закрыто)
	GetDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Notifier интерфейс исходящих уведомлений
type Notifier interface {
	Notify(ctx context.Context, notification *notifier.BookingNotification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
