package create_booking

import (
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования (заполненный черновик)
type Request struct {
	UserID      string             // Стабильный идентификатор клиента
	MemberCode  string             // Код клиента; пустой для нового клиента
	Date        time.Time          // Дата бронирования (без времени)
	StartTime   types.TimeString   // Время слота (например, "15:30")
	Name        string             // Имя клиента
	Phone       string             // Телефон клиента
	ServiceType domain.ServiceType // Тип услуги
	RemoveGel   bool               // Нужно ли снятие гель-лака
	DisplayName string             // Имя из LINE-профиля (только для уведомления)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      string
	MemberCode  string // Код клиента после upsert (сохраненный или назначенный)
	BookingDate time.Time
	StartTime   types.TimeString
	ServiceType domain.ServiceType
	RemoveGel   bool
	Status      string
	Name        string
	Phone       string
	CreatedAt   time.Time
}
