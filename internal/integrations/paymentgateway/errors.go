package paymentgateway

import "errors"

var (
	// ErrOrderRejected возвращается, когда шлюз отклонил создание заказа
	ErrOrderRejected = errors.New("paymentgateway client: order rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что шлюз недоступен: бронирование создаётся без заказа,
	// оплата остаётся в статусе pending
	ErrServiceDegraded = errors.New("paymentgateway unavailable: graceful degradation applied")
)
