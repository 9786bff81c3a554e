package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}

// validateBookingMoment проверяет дату и время слота по настенным часам
// Правила совпадают с cutoff-фильтром выбора: прошедший день, lead time,
// окно видимости месяцев
func validateBookingMoment(
	date time.Time,
	startTime types.TimeString,
	now time.Time,
	leadHours int,
	nextMonthVisibleFromDay int,
) error {
	if isPastDay(date, now) {
		return ErrInvalidDate
	}

	if !isMonthBookable(date, now, nextMonthVisibleFromDay) {
		return fmt.Errorf("%w: month %d-%02d is not open for booking yet",
			ErrDateTooFarInFuture, date.Year(), date.Month())
	}

	slotAt := startTime.At(date)
	if slotAt.IsZero() {
		return fmt.Errorf("%w: unparsable slot time %q", ErrInvalidInput, startTime)
	}

	cutoff := now.Add(time.Duration(leadHours) * time.Hour)
	if !slotAt.After(cutoff) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, leadHours)
	}

	return nil
}

// isPastDay возвращает true, если дата строго раньше сегодняшнего дня
func isPastDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isMonthBookable проверяет, что месяц даты уже открыт для бронирования
// Текущий месяц открыт всегда, следующий - с visibleFromDay числа
func isMonthBookable(date, now time.Time, visibleFromDay int) bool {
	requested := date.Year()*12 + int(date.Month()) - 1
	current := now.Year()*12 + int(now.Month()) - 1

	switch requested - current {
	case 0:
		return true
	case 1:
		return now.Day() >= visibleFromDay
	default:
		return false
	}
}

// containsSlot проверяет, что время входит в сконфигурированные слоты даты
func containsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
