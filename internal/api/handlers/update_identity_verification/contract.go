package update_identity_verification

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

type StayBookingService interface {
	SetIdentityVerification(ctx context.Context, id int64, req *models.UpdateIdentityStatusRequest) (*domain.StayBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
