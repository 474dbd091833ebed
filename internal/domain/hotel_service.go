package domain

import "time"

// HotelService represents a bookable hotel service and its daily slot menu
// Каталог услуг ведётся админкой отеля; этот сервис только читает его
type HotelService struct {
	ID    int64
	Name  string
	Price float64

	// Метки слотов "HH:MM" через запятую, например "10:00,14:00,18:00"
	SlotTimes string

	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
