package get_month_availability

import (
	"github.com/velitt/Studio-BookingService/internal/domain"
	monthAvailability "github.com/velitt/Studio-BookingService/internal/usecase/get_month_availability"
)

// DayResponse доступность одного календарного дня
type DayResponse struct {
	Date            string   `json:"date"`
	IsAvailable     bool     `json:"isAvailable"`
	BookedCount     int      `json:"bookedCount"`
	TotalSlots      int      `json:"totalSlots"`
	AvailableSlots  []string `json:"availableSlots"`
	Selectable      bool     `json:"selectable"`
	SelectableSlots []string `json:"selectableSlots"`
}

// MonthAvailabilityResponse HTTP response model: сетка на весь месяц
type MonthAvailabilityResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *monthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		available := make([]string, 0, len(d.AvailableSlots))
		for _, slot := range d.AvailableSlots {
			available = append(available, slot.String())
		}
		selectable := make([]string, 0, len(d.SelectableSlots))
		for _, slot := range d.SelectableSlots {
			selectable = append(selectable, slot.String())
		}
		days = append(days, DayResponse{
			Date:            d.Date.Format(domain.DateFormat),
			IsAvailable:     d.IsAvailable,
			BookedCount:     d.BookedCount,
			TotalSlots:      d.TotalSlots,
			AvailableSlots:  available,
			Selectable:      d.Selectable,
			SelectableSlots: selectable,
		})
	}

	return &MonthAvailabilityResponse{
		Year:  resp.Year,
		Month: int(resp.Month),
		Days:  days,
	}
}
