package create_stay_booking

import (
	"context"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/integrations/paymentgateway"
)

// StayBookingRepository интерфейс репозитория бронирований проживания
type StayBookingRepository interface {
	Create(ctx context.Context, booking *domain.StayBooking) (*domain.StayBooking, error)
	GetActiveOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.StayBooking, error)
	SetPaymentOrderID(ctx context.Context, id int64, orderID string) error
}

// PaymentGatewayClient интерфейс клиента платёжного шлюза
type PaymentGatewayClient interface {
	CreateOrderWithGracefulDegradation(ctx context.Context, orderReq *paymentgateway.CreateOrderRequest) (*paymentgateway.Order, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
