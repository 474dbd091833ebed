package create_service_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_service_booking: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_service_booking: service not found")

	// ErrNoAvailableSlot возвращается, когда в пределах горизонта поиска
	// не нашлось свободного слота. Бронирование отклоняется,
	// а не создаётся в занятом слоте
	ErrNoAvailableSlot = errors.New("create_service_booking: no available slot within search horizon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_service_booking: internal error")
)
