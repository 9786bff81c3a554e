package get_month_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

func TestFilterOfferableSlots_LeadTime(t *testing.T) {
	// now = 18 мая 10:00, lead 48ч => cutoff = 20 мая 10:00
	now := time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local)
	day := date(2024, time.May, 20)

	slots := []types.TimeString{"09:00", "10:00", "11:00", "20:00"}
	offerable := filterOfferableSlots(day, slots, now, 48)

	// Граница строгая: слот ровно в cutoff не предлагается
	assert.Equal(t, []types.TimeString{"11:00", "20:00"}, offerable)
}

func TestFilterOfferableSlots_NilInput(t *testing.T) {
	now := time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local)
	offerable := filterOfferableSlots(date(2024, time.May, 20), nil, now, 48)
	assert.Empty(t, offerable)
}

func TestFilterOfferableSlots_InvalidSlotSkipped(t *testing.T) {
	now := time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local)
	offerable := filterOfferableSlots(date(2024, time.May, 25),
		[]types.TimeString{"25:99", "11:00"}, now, 48)
	assert.Equal(t, []types.TimeString{"11:00"}, offerable)
}

func TestIsPastDay(t *testing.T) {
	now := time.Date(2024, time.May, 18, 23, 30, 0, 0, time.Local)

	assert.True(t, isPastDay(date(2024, time.May, 17), now))
	// Сегодняшний день не считается прошедшим даже поздно вечером
	assert.False(t, isPastDay(date(2024, time.May, 18), now))
	assert.False(t, isPastDay(date(2024, time.May, 19), now))
}

func TestApplyCutoff(t *testing.T) {
	now := time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		day        domain.DayAvailability
		selectable bool
		slots      []types.TimeString
	}{
		{
			name: "past day not selectable",
			day: domain.DayAvailability{
				Date:           date(2024, time.May, 10),
				AvailableSlots: []types.TimeString{"11:00"},
				TotalSlots:     1,
			},
			selectable: false,
			slots:      []types.TimeString{},
		},
		{
			name: "rest day not selectable",
			day: domain.DayAvailability{
				Date:           date(2024, time.May, 25),
				AvailableSlots: []types.TimeString{},
				TotalSlots:     0,
			},
			selectable: false,
			slots:      []types.TimeString{},
		},
		{
			name: "all free slots inside lead window",
			day: domain.DayAvailability{
				Date:           date(2024, time.May, 19),
				AvailableSlots: []types.TimeString{"09:00", "18:00"},
				TotalSlots:     2,
			},
			selectable: false,
			slots:      []types.TimeString{},
		},
		{
			name: "slot beyond lead window selectable",
			day: domain.DayAvailability{
				Date:           date(2024, time.May, 20),
				AvailableSlots: []types.TimeString{"09:00", "11:00"},
				TotalSlots:     2,
			},
			selectable: true,
			slots:      []types.TimeString{"11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selectable, slots := applyCutoff(tt.day, now, 48)
			assert.Equal(t, tt.selectable, selectable)
			assert.Equal(t, tt.slots, slots)
		})
	}
}

func TestIsMonthVisible_YearBoundary(t *testing.T) {
	// 20 декабря: январь следующего года уже открыт
	now := time.Date(2024, time.December, 20, 9, 0, 0, 0, time.Local)
	assert.True(t, isMonthVisible(2025, time.January, now, 15))

	// 10 декабря: еще нет
	now = time.Date(2024, time.December, 10, 9, 0, 0, 0, time.Local)
	assert.False(t, isMonthVisible(2025, time.January, now, 15))

	// Февраль из декабря не виден никогда
	now = time.Date(2024, time.December, 31, 9, 0, 0, 0, time.Local)
	assert.False(t, isMonthVisible(2025, time.February, now, 15))
}
