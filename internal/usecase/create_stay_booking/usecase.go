package create_stay_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/integrations/paymentgateway"
)

// defaultOrderCurrency валюта заказов платёжного шлюза
const defaultOrderCurrency = "USD"

// UseCase use case для создания бронирования проживания
type UseCase struct {
	stayRepo      StayBookingRepository
	paymentClient PaymentGatewayClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	stayRepo StayBookingRepository,
	paymentClient PaymentGatewayClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		stayRepo:      stayRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования проживания
// Проверка пересечений, поиск свободного окна и вставка выполняются
// в одной сериализуемой транзакции: два конкурентных запроса на одну
// комнату не могут одновременно увидеть «окно свободно» и оба записаться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateStayBooking: room=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных (вырожденное окно отклоняется здесь,
	// до какой-либо логики поиска окна)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateStayBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменные для хранения результата
	var result *domain.StayBooking
	var reallocated bool

	// 2. Выполняем проверку пересечений, поиск окна и вставку в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Находим свободное окно той же длительности (FOR UPDATE внутри)
		checkIn, checkOut, moved, err := uc.resolveWindow(txCtx, req.RoomID, req.CheckIn, req.CheckOut)
		if err != nil {
			if errors.Is(err, ErrNoAvailableWindow) {
				uc.logger.Warn("CreateStayBooking: no available window for room=%d", req.RoomID)
			} else {
				uc.logger.Error("CreateStayBooking: failed to resolve window: %v", err)
			}
			return err
		}

		if moved {
			uc.logger.Info("CreateStayBooking: window reallocated for room=%d: %s - %s",
				req.RoomID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		}

		// 2.2. Создаем бронирование с начальными статусами:
		// подтверждено, оплата не проведена, личность не проверена
		booking := &domain.StayBooking{
			RoomID:         req.RoomID,
			CheckIn:        checkIn,
			CheckOut:       checkOut,
			Guests:         req.Guests,
			Rooms:          req.Rooms,
			RoomPrice:      req.RoomPrice,
			Taxes:          req.Taxes,
			ServiceCharge:  req.ServiceCharge,
			TotalPrice:     req.TotalPrice,
			GuestName:      req.GuestName,
			GuestEmail:     req.GuestEmail,
			GuestPhone:     req.GuestPhone,
			Status:         domain.StatusConfirmed,
			PaymentStatus:  domain.PaymentPending,
			IdentityStatus: domain.IdentityPending,
		}

		created, err := uc.stayRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateStayBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		reallocated = moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateStayBooking: successfully created booking id=%d", result.ID)

	// 3. Создаем заказ в платёжном шлюзе (вне транзакции, с graceful degradation:
	// при недоступности шлюза бронирование уже создано, оплата остаётся pending)
	uc.createPaymentOrder(ctx, result)

	return toResponse(result, reallocated), nil
}

// createPaymentOrder создает заказ в платёжном шлюзе и сохраняет его ID
// Любая ошибка здесь не отменяет созданное бронирование
func (uc *UseCase) createPaymentOrder(ctx context.Context, booking *domain.StayBooking) {
	order, err := uc.paymentClient.CreateOrderWithGracefulDegradation(ctx, &paymentgateway.CreateOrderRequest{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Currency:  defaultOrderCurrency,
		Receipt:   booking.GuestEmail,
	})
	if err != nil {
		uc.logger.Warn("CreateStayBooking: payment order not created for booking id=%d: %v", booking.ID, err)
		return
	}

	if err := uc.stayRepo.SetPaymentOrderID(ctx, booking.ID, order.ID); err != nil {
		uc.logger.Error("CreateStayBooking: failed to store payment order id for booking id=%d: %v", booking.ID, err)
		return
	}

	booking.PaymentOrderID = &order.ID
}

// toResponse конвертирует domain модель в response
func toResponse(b *domain.StayBooking, reallocated bool) *Response {
	return &Response{
		ID:             b.ID,
		RoomID:         b.RoomID,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		Reallocated:    reallocated,
		Guests:         b.Guests,
		Rooms:          b.Rooms,
		RoomPrice:      b.RoomPrice,
		Taxes:          b.Taxes,
		ServiceCharge:  b.ServiceCharge,
		TotalPrice:     b.TotalPrice,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		IdentityStatus: string(b.IdentityStatus),
		PaymentOrderID: b.PaymentOrderID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
