package models

import (
	"time"

	"github.com/velitt/Studio-BookingService/internal/domain"
)

// BookingResponse одно бронирование в истории клиента
// Имя и телефон - снапшот на момент записи
type BookingResponse struct {
	ID           int64  `json:"id"`
	BookingDate  string `json:"bookingDate"`
	StartTime    string `json:"startTime"`
	ServiceType  string `json:"serviceType"`
	ServiceLabel string `json:"serviceLabel"`
	RemoveGel    bool   `json:"removeGel"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	CreatedAt    string `json:"createdAt"`
}

// BookingListResponse история бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		ServiceType:  string(b.ServiceType),
		ServiceLabel: b.ServiceType.Label(),
		RemoveGel:    b.RemoveGel,
		Status:       string(b.Status),
		Name:         b.Name,
		Phone:        b.Phone,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
