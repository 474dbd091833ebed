package attach_identity_proof

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

type StayBookingService interface {
	AttachIdentityProof(ctx context.Context, id int64, req *models.AttachIdentityProofRequest) (*domain.StayBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
