package domain

import "time"

// BookingStatus represents the lifecycle status of a stay booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentStatus represents the payment status of a stay booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// IdentityStatus represents the identity-verification status of a stay booking
type IdentityStatus string

const (
	IdentityPending  IdentityStatus = "pending"
	IdentityApproved IdentityStatus = "approved"
	IdentityRejected IdentityStatus = "rejected"
)

// StayBooking represents a room reservation over a continuous date window
type StayBooking struct {
	ID     int64
	RoomID int64

	// Полуинтервал [CheckIn, CheckOut): выезд в момент CheckOut
	// не пересекается с заездом другого гостя в тот же момент
	CheckIn  time.Time
	CheckOut time.Time

	Guests int
	Rooms  int

	// Цены приходят от вызывающей стороны и здесь не пересчитываются
	RoomPrice     float64
	Taxes         float64
	ServiceCharge float64
	TotalPrice    float64

	GuestName  string
	GuestEmail string
	GuestPhone string

	Status         BookingStatus
	PaymentStatus  PaymentStatus
	IdentityStatus IdentityStatus

	IDProofURL        *string
	IDProofType       *string
	IDProofUploadedAt *time.Time

	// Ссылка на заказ в платёжном шлюзе (если шлюз был доступен при создании)
	PaymentOrderID *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its room window
// Активные бронирования учитываются при проверке пересечений
func (b *StayBooking) IsActive() bool {
	if b.CancelledAt != nil {
		return false
	}
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// IsTerminal returns true if the booking reached a terminal state
func (b *StayBooking) IsTerminal() bool {
	return b.Status == StatusCheckedOut || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *StayBooking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// Duration возвращает длительность проживания
func (b *StayBooking) Duration() time.Duration {
	return b.CheckOut.Sub(b.CheckIn)
}

// GuestStaysFilter фильтр для получения бронирований гостя
type GuestStaysFilter struct {
	GuestEmail      string         // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и выехавшие
}
