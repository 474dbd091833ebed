package domain

// Bounds of the reallocation search loops
const (
	// MaxWindowShiftAttempts максимум сдвигов окна при поиске свободного
	// интервала для проживания; исчерпание — явная ошибка, а не тихий результат
	MaxWindowShiftAttempts = 50

	// MaxSlotSearchDays горизонт поиска свободного слота услуги в днях
	MaxSlotSearchDays = 30
)

// Business validation constants
const (
	MinGuests = 1
	MinRooms  = 1

	MaxGuestsPerBooking = 20
	MaxRoomsPerBooking  = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStayStatuses статусы, при которых проживание занимает окно комнаты
// Используется при проверке пересечений
var ActiveStayStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// InactiveStayStatuses статусы, при которых окно комнаты освобождено
var InactiveStayStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}

// ActiveServiceStatuses статусы, при которых сервисное бронирование занимает слот
var ActiveServiceStatuses = []ServiceBookingStatus{
	ServiceStatusPending,
	ServiceStatusConfirmed,
}
