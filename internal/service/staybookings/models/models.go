package models

import (
	"fmt"
	"time"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// GetGuestStaysRequest параметры выборки бронирований гостя
type GetGuestStaysRequest struct {
	GuestEmail      string
	Status          *string
	IncludeInactive bool
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
}

// UpdatePaymentStatusRequest запрос на смену статуса оплаты
type UpdatePaymentStatusRequest struct {
	PaymentStatus string
}

// UpdateIdentityStatusRequest запрос на смену статуса верификации личности
type UpdateIdentityStatusRequest struct {
	IdentityStatus string
}

// AttachIdentityProofRequest запрос на прикрепление документа гостя
type AttachIdentityProofRequest struct {
	ProofURL  string
	ProofType string
}

// StayBookingResponse модель бронирования проживания для HTTP ответов
type StayBookingResponse struct {
	ID     int64 `json:"id"`
	RoomID int64 `json:"roomId"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`

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

	IDProofURL        *string `json:"idProofUrl,omitempty"`
	IDProofType       *string `json:"idProofType,omitempty"`
	IDProofUploadedAt *string `json:"idProofUploadedAt,omitempty"`

	PaymentOrderID *string `json:"paymentOrderId,omitempty"`
	CancelledAt    *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain конвертирует доменное бронирование в HTTP модель
func FromDomain(b *domain.StayBooking) *StayBookingResponse {
	resp := &StayBookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn.Format(time.RFC3339),
		CheckOut:       b.CheckOut.Format(time.RFC3339),
		Guests:         b.Guests,
		Rooms:          b.Rooms,
		RoomPrice:      b.RoomPrice,
		Taxes:          b.Taxes,
		ServiceCharge:  b.ServiceCharge,
		TotalPrice:     b.TotalPrice,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		IdentityStatus: string(b.IdentityStatus),
		IDProofURL:     b.IDProofURL,
		IDProofType:    b.IDProofType,
		PaymentOrderID: b.PaymentOrderID,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
	}

	if b.IDProofUploadedAt != nil {
		uploadedAt := b.IDProofUploadedAt.Format(time.RFC3339)
		resp.IDProofUploadedAt = &uploadedAt
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainList конвертирует список доменных бронирований в HTTP модели
func FromDomainList(bookings []*domain.StayBooking) []*StayBookingResponse {
	result := make([]*StayBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomain(b))
	}
	return result
}

// ToDomainBookingStatus преобразует строку в статус бронирования
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCheckedIn,
		domain.StatusCheckedOut, domain.StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: booking status %q", domain.ErrUnknownStatus, s)
	}
}

// ToDomainPaymentStatus преобразует строку в статус оплаты
func ToDomainPaymentStatus(s string) (domain.PaymentStatus, error) {
	status := domain.PaymentStatus(s)
	switch status {
	case domain.PaymentPending, domain.PaymentPaid, domain.PaymentFailed:
		return status, nil
	default:
		return "", fmt.Errorf("%w: payment status %q", domain.ErrUnknownStatus, s)
	}
}

// ToDomainIdentityStatus преобразует строку в статус верификации личности
func ToDomainIdentityStatus(s string) (domain.IdentityStatus, error) {
	status := domain.IdentityStatus(s)
	switch status {
	case domain.IdentityPending, domain.IdentityApproved, domain.IdentityRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: identity status %q", domain.ErrUnknownStatus, s)
	}
}
