package domain

import (
	"time"

	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// ServiceBookingStatus represents the status of a hotel-service booking
// У сервисных бронирований нет осей оплаты и верификации личности
type ServiceBookingStatus string

const (
	ServiceStatusPending   ServiceBookingStatus = "pending"
	ServiceStatusConfirmed ServiceBookingStatus = "confirmed"
	ServiceStatusCancelled ServiceBookingStatus = "cancelled"
)

// ServiceBooking represents a booking of a hotel service (spa, dining, tour)
// into a discrete slot from the service's daily menu
type ServiceBooking struct {
	ID        int64
	ServiceID int64

	// Дата плюс метка слота из конечного меню услуги, а не непрерывный интервал
	BookingDate time.Time
	SlotTime    types.TimeString

	Guests int

	GuestName  string
	GuestEmail string
	GuestPhone string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	Status ServiceBookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *ServiceBooking) IsActive() bool {
	return b.Status == ServiceStatusPending || b.Status == ServiceStatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *ServiceBooking) CanBeCancelled() bool {
	return b.Status == ServiceStatusPending || b.Status == ServiceStatusConfirmed
}
