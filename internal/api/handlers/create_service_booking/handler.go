package create_service_booking

import (
	"errors"
	"net/http"

	"github.com/avlpav/HRS-ReservationService/internal/api/handlers"
	createServiceBooking "github.com/avlpav/HRS-ReservationService/internal/usecase/create_service_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени слота, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgServiceNotFound    = "услуга не найдена"
	msgNoAvailableSlot    = "нет свободного слота для бронирования"
)

type Handler struct {
	useCase CreateServiceBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateServiceBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/service-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /service-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /service-bookings - Failed to parse request: %v", err)
		if req.SlotTime != "" && len(req.SlotTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createServiceBooking.ErrInvalidInput):
			h.logger.Warn("POST /service-bookings - Invalid input: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createServiceBooking.ErrServiceNotFound):
			h.logger.Warn("POST /service-bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createServiceBooking.ErrNoAvailableSlot):
			h.logger.Warn("POST /service-bookings - No available slot: service_id=%d", req.ServiceID)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailableSlot)

		default:
			h.logger.Error("POST /service-bookings - Failed to create booking: service_id=%d, error=%v",
				req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /service-bookings - Booking created successfully: booking_id=%d, service_id=%d, reallocated=%t",
		result.ID, result.ServiceID, result.Reallocated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
