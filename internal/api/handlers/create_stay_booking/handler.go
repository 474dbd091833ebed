package create_stay_booking

import (
	"errors"
	"net/http"

	"github.com/avlpav/HRS-ReservationService/internal/api/handlers"
	createStayBooking "github.com/avlpav/HRS-ReservationService/internal/usecase/create_stay_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается RFC3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNoAvailableWindow  = "нет свободного окна для бронирования"
)

type Handler struct {
	useCase CreateStayBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateStayBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateStayBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /stays - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createStayBooking.ErrInvalidInput):
			h.logger.Warn("POST /stays - Invalid input: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createStayBooking.ErrNoAvailableWindow):
			h.logger.Warn("POST /stays - No available window: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailableWindow)

		default:
			h.logger.Error("POST /stays - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /stays - Booking created successfully: booking_id=%d, room_id=%d, reallocated=%t",
		result.ID, result.RoomID, result.Reallocated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
