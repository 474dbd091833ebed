package staybookings

import (
	"context"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// StayBookingRepository интерфейс репозитория бронирований проживания
type StayBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StayBooking, error)
	GetByGuestEmail(ctx context.Context, filter domain.GuestStaysFilter) ([]*domain.StayBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, cancelledAt time.Time) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	UpdateIdentityStatus(ctx context.Context, id int64, status domain.IdentityStatus) error
	AttachIdentityProof(ctx context.Context, id int64, proofURL, proofType string, uploadedAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
// Смена статуса выполняется по схеме «прочитать с блокировкой,
// проверить guard, записать» внутри одной транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
