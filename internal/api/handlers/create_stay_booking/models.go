package create_stay_booking

import (
	"time"

	createStayBooking "github.com/avlpav/HRS-ReservationService/internal/usecase/create_stay_booking"
)

// CreateStayBookingRequest HTTP request model
type CreateStayBookingRequest struct {
	RoomID   int64  `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // RFC3339, например "2026-02-10T14:00:00Z"
	CheckOut string `json:"checkOut"` // RFC3339, строго позже checkIn
	Guests   int    `json:"guests"`
	Rooms    int    `json:"rooms"`

	RoomPrice     float64 `json:"roomPrice"`
	Taxes         float64 `json:"taxes"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalPrice    float64 `json:"totalPrice"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
}

// StayBookingResponse HTTP response model
type StayBookingResponse struct {
	ID     int64 `json:"id"`
	RoomID int64 `json:"roomId"`

	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Reallocated bool   `json:"reallocated"`

	Guests int `json:"guests"`
	Rooms  int `json:"rooms"`

	RoomPrice     float64 `json:"roomPrice"`
	Taxes         float64 `json:"taxes"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalPrice    float64 `json:"totalPrice"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	IdentityStatus string `json:"identityVerificationStatus"`

	PaymentOrderID *string `json:"paymentOrderId,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateStayBookingRequest) ToUseCaseRequest() (*createStayBooking.Request, error) {
	checkIn, err := time.Parse(time.RFC3339, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(time.RFC3339, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createStayBooking.Request{
		RoomID:        r.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        r.Guests,
		Rooms:         r.Rooms,
		RoomPrice:     r.RoomPrice,
		Taxes:         r.Taxes,
		ServiceCharge: r.ServiceCharge,
		TotalPrice:    r.TotalPrice,
		GuestName:     r.GuestName,
		GuestEmail:    r.GuestEmail,
		GuestPhone:    r.GuestPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createStayBooking.Response) *StayBookingResponse {
	return &StayBookingResponse{
		ID:             resp.ID,
		RoomID:         resp.RoomID,
		CheckIn:        resp.CheckIn.Format(time.RFC3339),
		CheckOut:       resp.CheckOut.Format(time.RFC3339),
		Reallocated:    resp.Reallocated,
		Guests:         resp.Guests,
		Rooms:          resp.Rooms,
		RoomPrice:      resp.RoomPrice,
		Taxes:          resp.Taxes,
		ServiceCharge:  resp.ServiceCharge,
		TotalPrice:     resp.TotalPrice,
		GuestName:      resp.GuestName,
		GuestEmail:     resp.GuestEmail,
		GuestPhone:     resp.GuestPhone,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		IdentityStatus: resp.IdentityStatus,
		PaymentOrderID: resp.PaymentOrderID,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
