package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customerRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/customer"
	"github.com/velitt/Studio-BookingService/internal/service/customers/models"
)

// Service сервис профиля клиента
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetProfile получает профиль клиента по идентификатору
// Незарегистрированный клиент - не ошибка: возвращается пустой профиль,
// форма бронирования рендерится для нового клиента
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	s.logger.Info("GetProfile: fetching customer user=%s", userID)

	customer, err := s.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Info("GetProfile: user=%s not registered yet", userID)
			return models.EmptyProfile(userID), nil
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	if customer.IsBlacklisted {
		s.logger.Warn("GetProfile: user=%s is blacklisted", userID)
	}

	return models.FromDomainCustomer(customer), nil
}
