package get_month_availability

import (
	"context"
	"fmt"

	"github.com/velitt/Studio-BookingService/internal/domain"
)

// UseCase use case получения доступности на месяц
//
// Объединяет резолвер доступности (whitelist расписания минус занятые слоты)
// и cutoff-фильтр (прошедшие дни, lead time, окно видимости месяцев)
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger

	leadHours               int
	nextMonthVisibleFromDay int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	leadHours int,
	nextMonthVisibleFromDay int,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:            scheduleRepo,
		bookingRepo:             bookingRepo,
		timeProvider:            &RealTimeProvider{},
		logger:                  logger,
		leadHours:               leadHours,
		nextMonthVisibleFromDay: nextMonthVisibleFromDay,
	}
}

// Execute выполняет use case получения доступности на месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: user=%s, year=%d, month=%d", req.UserID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем окно видимости месяцев
	if !isMonthVisible(req.Year, req.Month, now, uc.nextMonthVisibleFromDay) {
		uc.logger.Warn("GetMonthAvailability: month %d-%02d not visible (today=%s, threshold=%d)",
			req.Year, req.Month, now.Format(domain.DateFormat), uc.nextMonthVisibleFromDay)
		return nil, ErrMonthNotVisible
	}

	startDate, endDate := monthRange(req.Year, req.Month)

	// 4. Загружаем расписание на месяц
	// Отказ здесь фатален: без расписания нельзя отличить закрытый день
	// от неизвестного, и безопасную сетку не построить
	configured, err := uc.scheduleRepo.GetSlotsByDateRange(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Загружаем занятые слоты
	// Отказ здесь деградация: продолжаем с нулевой занятостью - переоцененная
	// доступность поправима при создании бронирования (уникальный индекс в БД),
	// перепутать закрытый день с неизвестным - нет
	occupied, err := uc.bookingRepo.GetOccupiedSlots(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get occupied slots, assuming zero occupancy: %v", err)
		occupied = nil
	}

	// 6. Сливаем расписание с занятостью по каждому дню месяца
	resolved := resolveMonth(req.Year, req.Month, configured, occupied)

	// 7. Применяем cutoff-правила на момент запроса
	days := make([]Day, 0, len(resolved))
	openDays := 0

	for _, day := range resolved {
		selectable, selectableSlots := applyCutoff(day, now, uc.leadHours)
		if selectable {
			openDays++
		}

		days = append(days, Day{
			Date:            day.Date,
			IsAvailable:     day.IsAvailable,
			BookedCount:     day.BookedCount,
			TotalSlots:      day.TotalSlots,
			AvailableSlots:  day.AvailableSlots,
			Selectable:      selectable,
			SelectableSlots: selectableSlots,
		})
	}

	uc.logger.Info("GetMonthAvailability: resolved %d days (%d selectable) for %d-%02d",
		len(days), openDays, req.Year, req.Month)

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}
