package update_schedule

// UpdateDayScheduleRequest HTTP request model
// Пустой список slots закрывает дату для бронирования
type UpdateDayScheduleRequest struct {
	Slots []string `json:"slots"`
}

// UpdateDayScheduleResponse HTTP response model
type UpdateDayScheduleResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
