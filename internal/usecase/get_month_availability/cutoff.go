package get_month_availability

import (
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// Cutoff-правила выбора: сужают результат резолвера по настенным часам,
// прежде чем слоты будут предложены пользователю

// filterOfferableSlots оставляет слоты, до которых осталось строго больше
// leadHours часов. nil на входе дает пустой результат ("данных нет" - это
// "нечего предложить", а не "закрыто")
func filterOfferableSlots(date time.Time, slots []types.TimeString, now time.Time, leadHours int) []types.TimeString {
	cutoff := now.Add(time.Duration(leadHours) * time.Hour)

	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		at := slot.At(date)
		if at.IsZero() {
			// Невалидное время слота не предлагаем
			continue
		}
		if at.After(cutoff) {
			result = append(result, slot)
		}
	}

	return result
}

// isPastDay возвращает true, если дата строго раньше сегодняшнего дня
// (по локальному времени)
func isPastDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// applyCutoff выдает (selectable, offerable slots) для одного дня
//
// День выбираем, только если он не в прошлом, на него сконфигурированы слоты
// и после lead-time cutoff остается хотя бы один слот
func applyCutoff(day domain.DayAvailability, now time.Time, leadHours int) (bool, []types.TimeString) {
	if isPastDay(day.Date, now) {
		return false, []types.TimeString{}
	}

	if day.TotalSlots == 0 {
		return false, []types.TimeString{}
	}

	offerable := filterOfferableSlots(day.Date, day.AvailableSlots, now, leadHours)
	return len(offerable) > 0, offerable
}

// monthIndex сквозной номер месяца для сравнения через границу года
func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// isMonthVisible проверяет окно видимости месяцев
// Текущий месяц виден всегда; следующий открывается с visibleFromDay числа;
// прошедшие и более далекие месяцы не видны
func isMonthVisible(year int, month time.Month, now time.Time, visibleFromDay int) bool {
	requested := monthIndex(year, month)
	current := monthIndex(now.Year(), now.Month())

	switch requested - current {
	case 0:
		return true
	case 1:
		return now.Day() >= visibleFromDay
	default:
		return false
	}
}
