package get_guest_stays

import (
	"errors"
	"net/http"

	"github.com/avlpav/HRS-ReservationService/internal/api/handlers"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

const (
	msgMissingGuestEmail = "не указан email гостя"
	msgInvalidStatus     = "некорректный статус бронирования"
)

type Handler struct {
	service StayBookingService
	logger  Logger
}

func NewHandler(service StayBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stays?guestEmail=...&status=...&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	guestEmail := query.Get("guestEmail")
	if guestEmail == "" {
		h.logger.Warn("GET /stays - Missing guestEmail query param")
		handlers.RespondBadRequest(w, msgMissingGuestEmail)
		return
	}

	req := &models.GetGuestStaysRequest{
		GuestEmail:      guestEmail,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	bookings, err := h.service.GetGuestStays(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, staybookings.ErrInvalidInput):
			h.logger.Warn("GET /stays - Invalid filter: guest_email=%s, error=%v", guestEmail, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /stays - Failed to get bookings: guest_email=%s, error=%v", guestEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stays - Bookings retrieved successfully: guest_email=%s, count=%d",
		guestEmail, len(bookings))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(bookings))
}
