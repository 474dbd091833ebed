package create_stay_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Текст ошибки называет конкретное поле
	ErrInvalidInput = errors.New("create_stay_booking: invalid input data")

	// ErrNoAvailableWindow возвращается, когда поиск свободного окна
	// исчерпал лимит сдвигов, не найдя интервала без пересечений.
	// Бронирование отклоняется, а не создаётся с конфликтующим окном
	ErrNoAvailableWindow = errors.New("create_stay_booking: no available window for requested duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_stay_booking: internal error")
)
