package servicebooking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда сервисное бронирование не найдено
	ErrBookingNotFound = errors.New("servicebooking.repository: booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("servicebooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("servicebooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("servicebooking.repository: failed to scan row")
)
