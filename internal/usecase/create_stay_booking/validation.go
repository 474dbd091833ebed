package create_stay_booking

import (
	"fmt"
	"math"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Вырожденное окно (checkOut <= checkIn) отклоняется здесь,
// до запуска любой логики поиска окна
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: guests must be between %d and %d",
			ErrInvalidInput, domain.MinGuests, domain.MaxGuestsPerBooking)
	}

	if req.Rooms < domain.MinRooms || req.Rooms > domain.MaxRoomsPerBooking {
		return fmt.Errorf("%w: rooms must be between %d and %d",
			ErrInvalidInput, domain.MinRooms, domain.MaxRoomsPerBooking)
	}

	if err := validatePrice("roomPrice", req.RoomPrice); err != nil {
		return err
	}
	if err := validatePrice("taxes", req.Taxes); err != nil {
		return err
	}
	if err := validatePrice("serviceCharge", req.ServiceCharge); err != nil {
		return err
	}
	if err := validatePrice("totalPrice", req.TotalPrice); err != nil {
		return err
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

// validatePrice проверяет, что цена конечна и неотрицательна
func validatePrice(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, field)
	}
	if value < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, field)
	}
	return nil
}
