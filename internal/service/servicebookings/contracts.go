package servicebookings

import (
	"context"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// ServiceBookingRepository интерфейс репозитория бронирований услуг
type ServiceBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ServiceBookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
