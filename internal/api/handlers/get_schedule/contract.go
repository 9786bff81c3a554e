package get_schedule

import (
	"context"
	"time"

	"github.com/velitt/Studio-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetMonth(ctx context.Context, year int, month time.Month) (*models.MonthScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
