package create_booking

import (
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
	createBooking "github.com/velitt/Studio-BookingService/internal/usecase/create_booking"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Идентификатор клиента берется из контекста запроса, не из тела
type CreateBookingRequest struct {
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "15:30"
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	RemoveGel   bool   `json:"removeGel"`
	MemberCode  string `json:"memberCode,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      string `json:"userId"`
	MemberCode  string `json:"memberCode"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	ServiceType string `json:"serviceType"`
	RemoveGel   bool   `json:"removeGel"`
	Status      string `json:"status"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID, displayName string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		MemberCode:  r.MemberCode,
		Date:        bookingDate,
		StartTime:   startTime,
		Name:        r.Name,
		Phone:       r.Phone,
		ServiceType: domain.ServiceType(r.ServiceType),
		RemoveGel:   r.RemoveGel,
		DisplayName: displayName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		MemberCode:  resp.MemberCode,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		ServiceType: string(resp.ServiceType),
		RemoveGel:   resp.RemoveGel,
		Status:      resp.Status,
		Name:        resp.Name,
		Phone:       resp.Phone,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
