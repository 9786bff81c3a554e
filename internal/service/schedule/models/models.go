package models

// DayScheduleResponse сконфигурированные слоты одной даты
type DayScheduleResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// MonthScheduleResponse расписание на месяц
// Дни без слотов в список не входят - они закрыты
type MonthScheduleResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []DayScheduleResponse `json:"days"`
}
