package update_service_status

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

type ServiceBookingService interface {
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (*domain.ServiceBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
