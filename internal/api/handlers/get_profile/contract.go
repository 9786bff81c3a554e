package get_profile

import (
	"context"

	"github.com/velitt/Studio-BookingService/internal/service/customers/models"
)

type CustomersService interface {
	GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
