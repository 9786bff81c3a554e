package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velitt/Studio-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ string) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          1,
			UserID:      "U1",
			BookingDate: time.Date(2024, time.May, 21, 0, 0, 0, 0, time.Local),
			StartTime:   "11:00",
			ServiceType: domain.ServiceManicure,
			Status:      domain.StatusConfirmed,
			Name:        "Анна",
			Phone:       "+81901234567",
		},
	}}

	svc := NewService(repo, &noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "U1")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "2024-05-21", resp.Bookings[0].BookingDate)
	assert.Equal(t, "11:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "Маникюр", resp.Bookings[0].ServiceLabel)
}

func TestGetUserBookings_RepositoryFailureDegradesToEmptyList(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, &noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Bookings)
}

func TestGetUserBookings_EmptyUserID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &noopLogger{})

	_, err := svc.GetUserBookings(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
