package update_service_status

import (
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ServiceBookingResponse HTTP response model
type ServiceBookingResponse struct {
	ID        int64 `json:"id"`
	ServiceID int64 `json:"serviceId"`

	BookingDate string `json:"bookingDate"`
	SlotTime    string `json:"slotTime"`

	Guests int `json:"guests"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain конвертирует доменное бронирование услуги в HTTP response
func FromDomain(b *domain.ServiceBooking) *ServiceBookingResponse {
	return &ServiceBookingResponse{
		ID:           b.ID,
		ServiceID:    b.ServiceID,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		SlotTime:     b.SlotTime.String(),
		Guests:       b.Guests,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		GuestPhone:   b.GuestPhone,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
