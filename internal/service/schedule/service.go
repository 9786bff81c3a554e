package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/internal/service/schedule/models"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// Service сервис административного управления расписанием
// Адресован владельцу студии: настройка whitelist слотов по датам
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetMonth возвращает сконфигурированные слоты месяца
// В ответ попадают только даты, у которых есть хотя бы один слот
func (s *Service) GetMonth(ctx context.Context, year int, month time.Month) (*models.MonthScheduleResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: year must be within 2000..2100", ErrInvalidInput)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be within 1..12", ErrInvalidInput)
	}

	startDate := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	endDate := startDate.AddDate(0, 1, -1)

	s.logger.Info("GetMonth: fetching schedule for %d-%02d", year, month)

	configured, err := s.scheduleRepo.GetSlotsByDateRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetMonth: repository error for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: GetMonth - repository error: %v", ErrInternal, err)
	}

	days := make([]models.DayScheduleResponse, 0, len(configured))
	for date, slots := range configured {
		slotStrings := make([]string, 0, len(slots))
		for _, slot := range slots {
			slotStrings = append(slotStrings, slot.String())
		}
		days = append(days, models.DayScheduleResponse{Date: date, Slots: slotStrings})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return &models.MonthScheduleResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	}, nil
}

// ReplaceDay полностью заменяет слоты даты
// Пустой список закрывает дату. Слоты валидируются и дедуплицируются
func (s *Service) ReplaceDay(ctx context.Context, date time.Time, slots []string) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	parsed := make([]types.TimeString, 0, len(slots))
	seen := make(map[types.TimeString]struct{}, len(slots))

	for _, raw := range slots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidSlot, raw)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		parsed = append(parsed, slot)
	}

	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].IsBefore(parsed[j])
	})

	s.logger.Info("ReplaceDay: setting %d slots for %s", len(parsed), date.Format(domain.DateFormat))

	// delete + insert атомарно
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceDaySlots(txCtx, date, parsed)
	})

	if err != nil {
		s.logger.Error("ReplaceDay: failed for %s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: ReplaceDay - repository error: %v", ErrInternal, err)
	}

	return nil
}
