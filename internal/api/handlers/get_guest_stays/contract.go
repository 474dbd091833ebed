package get_guest_stays

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

type StayBookingService interface {
	GetGuestStays(ctx context.Context, req *models.GetGuestStaysRequest) ([]*domain.StayBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
