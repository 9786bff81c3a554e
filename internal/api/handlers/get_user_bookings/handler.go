package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velitt/Studio-BookingService/internal/api/handlers"
	"github.com/velitt/Studio-BookingService/internal/identity"
	"github.com/velitt/Studio-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgForbidden     = "нет доступа к бронированиям другого пользователя"
	msgUnauthorized  = "не удалось определить клиента"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/bookings - Missing identity in request context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		h.logger.Warn("GET /users/{userId}/bookings - Empty userId in path")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Историю можно смотреть только свою
	if userID != id.UserID {
		h.logger.Warn("GET /users/{userId}/bookings - Identity mismatch: path=%s, context=%s", userID, id.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/bookings - Invalid input: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{userId}/bookings - Failed to fetch bookings: user_id=%s, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Fetched %d bookings: user_id=%s", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
