package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/velitt/Studio-BookingService/internal/service/bookings/models"
)

// Service сервис истории бронирований клиента
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetUserBookings получает историю бронирований пользователя
// Сортировка от репозитория: сначала самые свежие.
//
// Отказ репозитория деградирует в пустой список: история - вспомогательная
// витрина, ее недоступность не должна ломать форму бронирования
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s, degrading to empty list: %v", userID, err)
		return &models.BookingListResponse{Bookings: []models.BookingResponse{}, Total: 0}, nil
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}
