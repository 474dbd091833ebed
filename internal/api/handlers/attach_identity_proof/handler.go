package attach_identity_proof

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
	msgInvalidProof       = "не указан документ или его тип"
	msgNotFound           = "бронирование не найдено"
	msgIdentityLocked     = "верификация личности уже подтверждена, новый документ не требуется"
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

// Handle POST /api/v1/stays/{bookingId}/identity-proof
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /stays/{id}/identity-proof - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AttachIdentityProofRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stays/{id}/identity-proof - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.AttachIdentityProof(r.Context(), bookingID,
		&models.AttachIdentityProofRequest{ProofURL: req.ProofURL, ProofType: req.ProofType})
	if err != nil {
		switch {
		case errors.Is(err, staybookings.ErrBookingNotFound):
			h.logger.Warn("POST /stays/{id}/identity-proof - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staybookings.ErrInvalidInput):
			h.logger.Warn("POST /stays/{id}/identity-proof - Invalid proof data: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidProof)

		case errors.Is(err, domain.ErrIdentityAlreadyApproved):
			h.logger.Warn("POST /stays/{id}/identity-proof - Identity already approved: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgIdentityLocked)

		default:
			h.logger.Error("POST /stays/{id}/identity-proof - Failed to attach proof: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stays/{id}/identity-proof - Proof attached successfully: booking_id=%d, status=%s",
		bookingID, booking.IdentityStatus)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(booking))
}
