package get_month_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

type fakeScheduleRepo struct {
	slots map[string][]types.TimeString
	err   error
}

func (f *fakeScheduleRepo) GetSlotsByDateRange(_ context.Context, _, _ time.Time) (map[string][]types.TimeString, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeBookingRepo struct {
	occupied []domain.DateSlot
	err      error
}

func (f *fakeBookingRepo) GetOccupiedSlots(_ context.Context, _, _ time.Time) ([]domain.DateSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.occupied, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(schedule *fakeScheduleRepo, booking *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(schedule, booking, 48, 15, &noopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExecute_AvailableIsConfiguredMinusOccupied(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{
		"2024-05-20": {"11:00", "15:30", "20:00"},
	}}
	booking := &fakeBookingRepo{occupied: []domain.DateSlot{
		{Date: date(2024, time.May, 20), StartTime: "11:00"},
	}}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	// Сетка на весь месяц, по возрастанию дат
	require.Len(t, resp.Days, 31)
	for i, day := range resp.Days {
		assert.Equal(t, i+1, day.Date.Day())
	}

	day := resp.Days[19] // 20 мая
	assert.True(t, day.IsAvailable)
	assert.Equal(t, 1, day.BookedCount)
	assert.Equal(t, 3, day.TotalSlots)
	assert.Equal(t, []types.TimeString{"15:30", "20:00"}, day.AvailableSlots)
}

func TestExecute_DayWithoutSlotsIsRestDay(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{}}
	booking := &fakeBookingRepo{}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	for _, day := range resp.Days {
		assert.False(t, day.IsAvailable)
		assert.Equal(t, 0, day.TotalSlots)
		assert.Equal(t, 0, day.BookedCount)
		assert.Empty(t, day.AvailableSlots)
		assert.False(t, day.Selectable)
	}
}

func TestExecute_FullyBookedDay(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{
		"2024-05-20": {"11:00", "15:30"},
	}}
	booking := &fakeBookingRepo{occupied: []domain.DateSlot{
		{Date: date(2024, time.May, 20), StartTime: "11:00"},
		{Date: date(2024, time.May, 20), StartTime: "15:30"},
	}}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	day := resp.Days[19]
	assert.False(t, day.IsAvailable)
	assert.Equal(t, 2, day.BookedCount)
	assert.Equal(t, 2, day.TotalSlots)
	assert.Empty(t, day.AvailableSlots)
	assert.False(t, day.Selectable)
}

func TestExecute_OccupiedSlotOutsideScheduleDoesNotInflateCount(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{
		"2024-05-20": {"11:00"},
	}}
	booking := &fakeBookingRepo{occupied: []domain.DateSlot{
		// Слот вне конфигурации: администратор сузил расписание после записи
		{Date: date(2024, time.May, 20), StartTime: "23:00"},
	}}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	day := resp.Days[19]
	assert.Equal(t, 0, day.BookedCount)
	assert.Equal(t, []types.TimeString{"11:00"}, day.AvailableSlots)
}

func TestExecute_DuplicateConfiguredSlotsCollapse(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{
		"2024-05-20": {"15:30", "11:00", "15:30"},
	}}
	booking := &fakeBookingRepo{}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	day := resp.Days[19]
	assert.Equal(t, 2, day.TotalSlots)
	assert.Equal(t, []types.TimeString{"11:00", "15:30"}, day.AvailableSlots)
}

func TestExecute_ScheduleFailureIsFatal(t *testing.T) {
	schedule := &fakeScheduleRepo{err: errors.New("connection refused")}
	booking := &fakeBookingRepo{}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_OccupancyFailureDegradesToZeroOccupancy(t *testing.T) {
	schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{
		"2024-05-20": {"11:00", "15:30"},
	}}
	booking := &fakeBookingRepo{err: errors.New("connection refused")}

	uc := newTestUseCase(schedule, booking, time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: time.May})
	require.NoError(t, err)

	day := resp.Days[19]
	assert.True(t, day.IsAvailable)
	assert.Equal(t, 0, day.BookedCount)
	assert.Equal(t, []types.TimeString{"11:00", "15:30"}, day.AvailableSlots)
}

func TestExecute_MonthVisibility(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		year    int
		month   time.Month
		visible bool
	}{
		{
			name:    "current month always visible",
			now:     time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local),
			year:    2024,
			month:   time.May,
			visible: true,
		},
		{
			name:    "next month hidden before threshold day",
			now:     time.Date(2024, time.May, 14, 23, 59, 0, 0, time.Local),
			year:    2024,
			month:   time.June,
			visible: false,
		},
		{
			name:    "next month visible from threshold day",
			now:     time.Date(2024, time.May, 15, 0, 1, 0, 0, time.Local),
			year:    2024,
			month:   time.June,
			visible: true,
		},
		{
			name:    "past month never visible",
			now:     time.Date(2024, time.May, 20, 9, 0, 0, 0, time.Local),
			year:    2024,
			month:   time.April,
			visible: false,
		},
		{
			name:    "month after next never visible",
			now:     time.Date(2024, time.May, 31, 9, 0, 0, 0, time.Local),
			year:    2024,
			month:   time.July,
			visible: false,
		},
		{
			name:    "year boundary: january visible from mid-december",
			now:     time.Date(2024, time.December, 15, 9, 0, 0, 0, time.Local),
			year:    2025,
			month:   time.January,
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := &fakeScheduleRepo{slots: map[string][]types.TimeString{}}
			uc := newTestUseCase(schedule, &fakeBookingRepo{}, tt.now)

			_, err := uc.Execute(context.Background(), &Request{Year: tt.year, Month: tt.month})
			if tt.visible {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMonthNotVisible)
			}
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBookingRepo{},
		time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	_, err := uc.Execute(context.Background(), &Request{Year: 1999, Month: time.May})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
