package create_stay_booking

import "time"

// Request модель запроса на создание бронирования проживания
type Request struct {
	RoomID   int64     // ID комнаты
	CheckIn  time.Time // Момент заезда
	CheckOut time.Time // Момент выезда (строго позже заезда)
	Guests   int       // Количество гостей
	Rooms    int       // Количество комнат

	// Цены считаются вызывающей стороной и не пересчитываются здесь
	RoomPrice     float64
	Taxes         float64
	ServiceCharge float64
	TotalPrice    float64

	GuestName  string
	GuestEmail string
	GuestPhone string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID     int64
	RoomID int64

	// Итоговое окно: при конфликте с существующими бронированиями
	// запрошенное окно сдвигается на ближайшее свободное той же длительности
	CheckIn     time.Time
	CheckOut    time.Time
	Reallocated bool // true, если окно было сдвинуто относительно запрошенного

	Guests int
	Rooms  int

	RoomPrice     float64
	Taxes         float64
	ServiceCharge float64
	TotalPrice    float64

	GuestName  string
	GuestEmail string
	GuestPhone string

	Status         string
	PaymentStatus  string
	IdentityStatus string

	PaymentOrderID *string // ID заказа в платёжном шлюзе, если шлюз был доступен

	CreatedAt time.Time
	UpdatedAt time.Time
}
