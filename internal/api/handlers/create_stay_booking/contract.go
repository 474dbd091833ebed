package create_stay_booking

import (
	"context"

	createStayBooking "github.com/avlpav/HRS-ReservationService/internal/usecase/create_stay_booking"
)

type CreateStayBookingUseCase interface {
	Execute(ctx context.Context, req *createStayBooking.Request) (*createStayBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
