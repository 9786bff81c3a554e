package notifier

// BookingNotification payload webhook-уведомления о новом бронировании
// Отправляется во внешний сервис автоматизации после успешной записи
type BookingNotification struct {
	BookingID    int64  `json:"bookingId"`
	BookingDate  string `json:"bookingDate"` // YYYY-MM-DD
	StartTime    string `json:"startTime"`   // HH:MM
	ServiceType  string `json:"serviceType"`
	ServiceLabel string `json:"serviceLabel"`
	RemoveGel    bool   `json:"removeGel"`
	MemberCode   string `json:"memberCode"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	DisplayName  string `json:"displayName"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
