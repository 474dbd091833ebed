package create_service_booking

import (
	"context"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	Create(ctx context.Context, booking *domain.ServiceBooking) (*domain.ServiceBooking, error)
	GetBookedSlots(ctx context.Context, serviceID int64, date time.Time) ([]types.TimeString, error)
}

// HotelServiceRepository интерфейс каталога услуг отеля
type HotelServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.HotelService, error)
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
