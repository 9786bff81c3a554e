package update_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/velitt/Studio-BookingService/internal/api/handlers"
	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlot        = "некорректный формат времени слота, ожидается HH:MM"
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

// Handle PUT /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PUT /schedule/{date} - Invalid date: %q, error=%v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateDayScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/{date} - Invalid request body: date=%s, error=%v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ReplaceDay(r.Context(), date, req.Slots); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSlot):
			h.logger.Warn("PUT /schedule/{date} - Invalid slot: date=%s, error=%v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/{date} - Invalid input: date=%s, error=%v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/{date} - Failed to replace day: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/{date} - Day replaced: date=%s, slots=%d", rawDate, len(req.Slots))
	handlers.RespondJSON(w, http.StatusOK, UpdateDayScheduleResponse{Date: rawDate, Slots: req.Slots})
}
