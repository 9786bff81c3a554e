package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	valid := func() *Request {
		return &Request{
			UserID:      "U1234",
			Date:        time.Date(2024, time.May, 21, 0, 0, 0, 0, time.Local),
			StartTime:   "11:00",
			Name:        "Анна",
			Phone:       "+81901234567",
			ServiceType: domain.ServicePedicureGel,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *Request) {}, wantErr: false},
		{name: "missing user id", mutate: func(r *Request) { r.UserID = "  " }, wantErr: true},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: true},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: true},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }, wantErr: true},
		{name: "missing name", mutate: func(r *Request) { r.Name = "" }, wantErr: true},
		{name: "name too long", mutate: func(r *Request) { r.Name = strings.Repeat("a", domain.MaxNameLength+1) }, wantErr: true},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = " " }, wantErr: true},
		{name: "phone too long", mutate: func(r *Request) { r.Phone = strings.Repeat("1", domain.MaxPhoneLength+1) }, wantErr: true},
		{name: "unknown service type", mutate: func(r *Request) { r.ServiceType = "massage" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBookingMoment(t *testing.T) {
	now := time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		wantErr   error
	}{
		{
			name:      "past day",
			date:      time.Date(2024, time.May, 17, 0, 0, 0, 0, time.Local),
			startTime: "11:00",
			wantErr:   ErrInvalidDate,
		},
		{
			name:      "slot inside lead window",
			date:      time.Date(2024, time.May, 19, 0, 0, 0, 0, time.Local),
			startTime: "11:00",
			wantErr:   ErrTooLateToBook,
		},
		{
			name:      "slot exactly at cutoff",
			date:      time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local),
			startTime: "10:00",
			wantErr:   ErrTooLateToBook,
		},
		{
			name:      "slot just beyond cutoff",
			date:      time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local),
			startTime: "11:00",
			wantErr:   nil,
		},
		{
			name:      "next month open from threshold day",
			date:      time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local),
			startTime: "11:00",
			wantErr:   nil,
		},
		{
			name:      "month after next not bookable",
			date:      time.Date(2024, time.July, 10, 0, 0, 0, 0, time.Local),
			startTime: "11:00",
			wantErr:   ErrDateTooFarInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBookingMoment(tt.date, tt.startTime, now, 48, 15)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBookingMoment_NextMonthClosedBeforeThreshold(t *testing.T) {
	// 10 мая: июнь еще не открыт
	now := time.Date(2024, time.May, 10, 10, 0, 0, 0, time.Local)

	err := validateBookingMoment(
		time.Date(2024, time.June, 20, 0, 0, 0, 0, time.Local),
		"11:00", now, 48, 15)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestNewMemberCode(t *testing.T) {
	code := newMemberCode()
	assert.Len(t, code, 8)
	assert.Equal(t, strings.ToUpper(code), code)

	// Коды практически уникальны
	assert.NotEqual(t, code, newMemberCode())
}
