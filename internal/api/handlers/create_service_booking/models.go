package create_service_booking

import (
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	createServiceBooking "github.com/avlpav/HRS-ReservationService/internal/usecase/create_service_booking"
	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// CreateServiceBookingRequest HTTP request model
type CreateServiceBookingRequest struct {
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`     // "2026-03-15"
	SlotTime  string `json:"slotTime"` // "10:00"
	Guests    int    `json:"guests"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

// ServiceBookingResponse HTTP response model
type ServiceBookingResponse struct {
	ID        int64 `json:"id"`
	ServiceID int64 `json:"serviceId"`

	BookingDate string `json:"bookingDate"`
	SlotTime    string `json:"slotTime"`
	Reallocated bool   `json:"reallocated"`

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateServiceBookingRequest) ToUseCaseRequest() (*createServiceBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.SlotTime)
	if err != nil {
		return nil, err
	}

	return &createServiceBooking.Request{
		ServiceID:  r.ServiceID,
		Date:       date,
		SlotTime:   slotTime,
		Guests:     r.Guests,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		GuestPhone: r.GuestPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createServiceBooking.Response) *ServiceBookingResponse {
	return &ServiceBookingResponse{
		ID:           resp.ID,
		ServiceID:    resp.ServiceID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		SlotTime:     resp.SlotTime.String(),
		Reallocated:  resp.Reallocated,
		Guests:       resp.Guests,
		GuestName:    resp.GuestName,
		GuestEmail:   resp.GuestEmail,
		GuestPhone:   resp.GuestPhone,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
