package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velitt/Studio-BookingService/internal/identity"
	createBooking "github.com/velitt/Studio-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"bookingDate": "2024-05-21",
	"startTime": "11:00",
	"name": "Анна",
	"phone": "+81901234567",
	"serviceType": "manicure",
	"removeGel": true
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string, withIdentity bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, &noopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withIdentity {
		ctx := identity.WithIdentity(r.Context(), &identity.Identity{UserID: "U1", DisplayName: "Anna"})
		r = r.WithContext(ctx)
	}

	w := httptest.NewRecorder()
	handler.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:          42,
		UserID:      "U1",
		MemberCode:  "AB12CD34",
		BookingDate: time.Date(2024, time.May, 21, 0, 0, 0, 0, time.Local),
		StartTime:   "11:00",
		ServiceType: "manicure",
		RemoveGel:   true,
		Status:      "confirmed",
		Name:        "Анна",
		Phone:       "+81901234567",
		CreatedAt:   time.Date(2024, time.May, 18, 10, 0, 0, 0, time.Local),
	}}

	w := doRequest(t, uc, validBody, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"memberCode":"AB12CD34"`)
	assert.Contains(t, w.Body.String(), `"bookingDate":"2024-05-21"`)

	// Личность из контекста, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "U1", uc.gotReq.UserID)
	assert.Equal(t, "Anna", uc.gotReq.DisplayName)
}

func TestHandle_MissingIdentity(t *testing.T) {
	w := doRequest(t, &fakeUseCase{}, validBody, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	w := doRequest(t, &fakeUseCase{}, `{broken`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2024-05-21", "21.05.2024", 1)
	w := doRequest(t, &fakeUseCase{}, body, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "blacklisted", err: createBooking.ErrUserBlacklisted, status: http.StatusForbidden},
		{name: "slot taken", err: createBooking.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "studio closed", err: createBooking.ErrStudioClosed, status: http.StatusBadRequest},
		{name: "past date", err: createBooking.ErrInvalidDate, status: http.StatusBadRequest},
		{name: "too far", err: createBooking.ErrDateTooFarInFuture, status: http.StatusBadRequest},
		{name: "bad slot", err: createBooking.ErrInvalidTimeSlot, status: http.StatusBadRequest},
		{name: "too late", err: createBooking.ErrTooLateToBook, status: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, &fakeUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
