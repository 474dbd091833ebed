package servicebookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование услуги не найдено
	ErrBookingNotFound = errors.New("service booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("servicebookings service: internal error")
)
