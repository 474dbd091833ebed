package create_service_booking

import (
	"fmt"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotTime.IsZero() {
		return fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}

	if err := req.SlotTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slotTime format: %v", ErrInvalidInput, err)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuestsPerBooking)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.GuestEmail == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}

	if req.GuestPhone == "" {
		return fmt.Errorf("%w: guestPhone is required", ErrInvalidInput)
	}

	return nil
}
