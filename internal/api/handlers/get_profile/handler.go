package get_profile

import (
	"errors"
	"net/http"

	"github.com/velitt/Studio-BookingService/internal/api/handlers"
	"github.com/velitt/Studio-BookingService/internal/identity"
	"github.com/velitt/Studio-BookingService/internal/service/customers"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgUnauthorized  = "не удалось определить клиента"
)

type Handler struct {
	service CustomersService
	logger  Logger
}

func NewHandler(service CustomersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /me - Missing identity in request context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.GetProfile(r.Context(), id.UserID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("GET /me - Invalid input: user_id=%s", id.UserID)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /me - Failed to fetch profile: user_id=%s, error=%v", id.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me - Profile fetched: user_id=%s, registered=%t", id.UserID, result.Registered)
	handlers.RespondJSON(w, http.StatusOK, result)
}
