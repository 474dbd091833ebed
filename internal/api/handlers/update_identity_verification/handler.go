package update_identity_verification

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
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус верификации"
	msgNotFound           = "бронирование не найдено"
	msgIdentityLocked     = "верификация личности уже подтверждена и не может быть изменена"
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

// Handle PATCH /api/v1/stays/{bookingId}/verification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /stays/{id}/verification - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateIdentityStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /stays/{id}/verification - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.SetIdentityVerification(r.Context(), bookingID,
		&models.UpdateIdentityStatusRequest{IdentityStatus: req.IdentityStatus})
	if err != nil {
		switch {
		case errors.Is(err, staybookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /stays/{id}/verification - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staybookings.ErrInvalidInput), errors.Is(err, domain.ErrUnknownStatus):
			h.logger.Warn("PATCH /stays/{id}/verification - Invalid identity status: booking_id=%d, status=%s",
				bookingID, req.IdentityStatus)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, domain.ErrIdentityAlreadyApproved):
			h.logger.Warn("PATCH /stays/{id}/verification - Identity already approved: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgIdentityLocked)

		default:
			h.logger.Error("PATCH /stays/{id}/verification - Failed to update identity status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /stays/{id}/verification - Identity status updated successfully: booking_id=%d, status=%s",
		bookingID, booking.IdentityStatus)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(booking))
}
