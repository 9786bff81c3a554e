package get_month_availability

import (
	"sort"
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// monthRange возвращает первый и последний день месяца (включительно)
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// resolveMonth строит запись доступности для каждого календарного дня месяца
//
// Для дня без сконфигурированных слотов возвращается запись выходного дня -
// с точки зрения вызывающего она неотличима от "администратор день не настраивал".
// available = configured \ occupied, отсортировано по возрастанию;
// bookedCount = |occupied ∩ configured|: занятые слоты вне конфигурации
// счетчик не раздувают. Дубликаты в occupied схлопываются
func resolveMonth(
	year int,
	month time.Month,
	configured map[string][]types.TimeString,
	occupied []domain.DateSlot,
) []domain.DayAvailability {
	occupiedByDate := groupOccupiedByDate(occupied)

	first, last := monthRange(year, month)
	daysInMonth := last.Day()

	days := make([]domain.DayAvailability, 0, daysInMonth)

	for d := 0; d < daysInMonth; d++ {
		date := first.AddDate(0, 0, d)
		key := date.Format(domain.DateFormat)

		configuredSlots := dedupeSorted(configured[key])
		if len(configuredSlots) == 0 {
			// Выходной день
			days = append(days, domain.DayAvailability{
				Date:           date,
				IsAvailable:    false,
				BookedCount:    0,
				AvailableSlots: []types.TimeString{},
				TotalSlots:     0,
			})
			continue
		}

		occupiedSet := occupiedByDate[key]

		available := make([]types.TimeString, 0, len(configuredSlots))
		bookedCount := 0

		for _, slot := range configuredSlots {
			if _, taken := occupiedSet[slot]; taken {
				bookedCount++
				continue
			}
			available = append(available, slot)
		}

		days = append(days, domain.DayAvailability{
			Date:           date,
			IsAvailable:    len(available) > 0,
			BookedCount:    bookedCount,
			AvailableSlots: available,
			TotalSlots:     len(configuredSlots),
		})
	}

	return days
}

// groupOccupiedByDate группирует занятые слоты по дате как множества
// Слот, встретившийся дважды (чего при корректных данных не бывает),
// учитывается один раз
func groupOccupiedByDate(occupied []domain.DateSlot) map[string]map[types.TimeString]struct{} {
	result := make(map[string]map[types.TimeString]struct{})

	for _, slot := range occupied {
		key := slot.Date.Format(domain.DateFormat)
		if result[key] == nil {
			result[key] = make(map[types.TimeString]struct{})
		}
		result[key][slot.StartTime] = struct{}{}
	}

	return result
}

// dedupeSorted возвращает уникальные слоты, отсортированные по возрастанию
// Лексикографический порядок строк "HH:MM" совпадает с хронологическим
func dedupeSorted(slots []types.TimeString) []types.TimeString {
	if len(slots) == 0 {
		return nil
	}

	seen := make(map[types.TimeString]struct{}, len(slots))
	result := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		result = append(result, slot)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].IsBefore(result[j])
	})

	return result
}
