package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с платёжным шлюзом
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного шлюза
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ на оплату бронирования
func (c *Client) CreateOrder(ctx context.Context, orderReq *CreateOrderRequest) (*Order, error) {
	url := fmt.Sprintf("%s/internal/orders", c.baseURL)

	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return nil, ErrOrderRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &order, nil
}

// CreateOrderWithGracefulDegradation создает заказ с graceful degradation
// При недоступности шлюза возвращает ErrServiceDegraded: бронирование
// создаётся без заказа, оплата остаётся pending и заказ создаётся позже
func (c *Client) CreateOrderWithGracefulDegradation(ctx context.Context, orderReq *CreateOrderRequest) (*Order, error) {
	c.log.Info("Creating payment order for booking_id=%d, amount=%.2f", orderReq.BookingID, orderReq.Amount)

	order, err := c.CreateOrder(ctx, orderReq)
	if err != nil {
		// Отклонение заказа — бизнес-ошибка, пробрасываем её дальше
		if err == ErrOrderRejected {
			c.log.Warn("Payment order rejected for booking_id=%d", orderReq.BookingID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность шлюза, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("Payment gateway unavailable, applying graceful degradation for booking_id=%d: %v",
			orderReq.BookingID, err)
		return nil, fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, orderReq.BookingID, err)
	}

	c.log.Info("Successfully created payment order id=%s for booking_id=%d", order.ID, orderReq.BookingID)
	return order, nil
}
