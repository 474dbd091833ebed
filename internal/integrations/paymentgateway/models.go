package paymentgateway

// CreateOrderRequest запрос на создание заказа в платёжном шлюзе
type CreateOrderRequest struct {
	BookingID int64   `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Receipt   string  `json:"receipt"` // email гостя для чека
}

// Order заказ, созданный платёжным шлюзом
// Подпись и статус платежа проверяются на стороне шлюза; этот сервис
// хранит только ссылку на заказ
type Order struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}
