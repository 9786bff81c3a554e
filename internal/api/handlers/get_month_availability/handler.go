package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/velitt/Studio-BookingService/internal/api/handlers"
	"github.com/velitt/Studio-BookingService/internal/identity"
	monthAvailability "github.com/velitt/Studio-BookingService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear     = "некорректный параметр year"
	msgInvalidMonth    = "некорректный параметр month"
	msgMonthNotVisible = "запрошенный месяц пока недоступен для просмотра"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?year=YYYY&month=M
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid year parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Идентификация опциональна - используется только для логирования
	userID := ""
	if id, ok := identity.FromContext(r.Context()); ok {
		userID = id.UserID
	}

	result, err := h.useCase.Execute(r.Context(), &monthAvailability.Request{
		UserID: userID,
		Year:   year,
		Month:  time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, monthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, monthAvailability.ErrMonthNotVisible):
			h.logger.Warn("GET /availability - Month not visible: year=%d, month=%d", year, month)
			handlers.RespondError(w, http.StatusForbidden, msgMonthNotVisible)

		default:
			h.logger.Error("GET /availability - Failed to resolve month: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Resolved: year=%d, month=%d, days=%d", year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
