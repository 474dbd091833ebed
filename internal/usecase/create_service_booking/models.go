package create_service_booking

import (
	"time"

	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования услуги
type Request struct {
	ServiceID int64            // ID услуги из каталога отеля
	Date      time.Time        // Дата бронирования (без времени)
	SlotTime  types.TimeString // Запрошенная метка слота (например, "10:00")
	Guests    int              // Количество гостей

	GuestName  string
	GuestEmail string
	GuestPhone string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ServiceID int64

	// Итоговые дата и слот: при конфликте запрос сдвигается на ближайший
	// свободный слот из меню услуги, при необходимости — на следующие дни
	BookingDate time.Time
	SlotTime    types.TimeString
	Reallocated bool

	Guests int

	GuestName  string
	GuestEmail string
	GuestPhone string

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}
