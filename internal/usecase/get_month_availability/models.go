package get_month_availability

import (
	"time"

	"github.com/velitt/Studio-BookingService/pkg/types"
)

// Request модель запроса доступности на месяц
type Request struct {
	UserID string     // ID пользователя (для логирования, не влияет на результат)
	Year   int        // Год
	Month  time.Month // Месяц (1-12)
}

// Response модель ответа: по одной записи на каждый календарный день месяца,
// в порядке возрастания дат
type Response struct {
	Year  int
	Month time.Month
	Days  []Day
}

// Day доступность одного календарного дня
// Сырые поля (IsAvailable..TotalSlots) - результат резолвера;
// Selectable/SelectableSlots - результат cutoff-фильтра на момент запроса
type Day struct {
	Date           time.Time          // Дата дня
	IsAvailable    bool               // Есть ли свободные слоты (без учета cutoff)
	BookedCount    int                // Количество занятых сконфигурированных слотов
	TotalSlots     int                // Всего сконфигурированных слотов (0 = выходной)
	AvailableSlots []types.TimeString // Свободные слоты, по возрастанию

	Selectable      bool               // Можно ли выбрать день с учетом cutoff-правил
	SelectableSlots []types.TimeString // Слоты, проходящие lead-time cutoff
}
