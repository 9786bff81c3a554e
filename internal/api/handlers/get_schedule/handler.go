package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/velitt/Studio-BookingService/internal/api/handlers"
	"github.com/velitt/Studio-BookingService/internal/service/schedule"
)

const (
	msgInvalidYear  = "некорректный параметр year"
	msgInvalidMonth = "некорректный параметр month"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?year=YYYY&month=M
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid year parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid month parameter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.GetMonth(r.Context(), year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /schedule - Failed to fetch schedule: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Fetched schedule: year=%d, month=%d, days=%d", year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
