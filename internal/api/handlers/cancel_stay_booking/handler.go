package cancel_stay_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlpav/HRS-ReservationService/internal/api/handlers"
	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgCannotBeCancelled = "бронирование не может быть отменено"
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

// Handle PATCH /api/v1/stays/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /stays/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, staybookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /stays/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("PATCH /stays/{id}/cancel - Booking cannot be cancelled: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotBeCancelled)

		default:
			h.logger.Error("PATCH /stays/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /stays/{id}/cancel - Booking cancelled successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(booking))
}
