package update_payment_status

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
	msgInvalidStatus      = "некорректный статус оплаты"
	msgNotFound           = "бронирование не найдено"
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

// Handle PATCH /api/v1/stays/{bookingId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /stays/{id}/payment - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /stays/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.SetPaymentStatus(r.Context(), bookingID,
		&models.UpdatePaymentStatusRequest{PaymentStatus: req.PaymentStatus})
	if err != nil {
		switch {
		case errors.Is(err, staybookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /stays/{id}/payment - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staybookings.ErrInvalidInput), errors.Is(err, domain.ErrUnknownStatus):
			h.logger.Warn("PATCH /stays/{id}/payment - Invalid payment status: booking_id=%d, status=%s",
				bookingID, req.PaymentStatus)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /stays/{id}/payment - Failed to update payment status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /stays/{id}/payment - Payment status updated successfully: booking_id=%d, status=%s",
		bookingID, booking.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(booking))
}
