package get_stay_booking

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

type StayBookingService interface {
	GetByID(ctx context.Context, id int64) (*domain.StayBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
