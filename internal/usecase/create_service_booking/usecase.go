package create_service_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	hotelServiceRepo "github.com/avlpav/HRS-ReservationService/internal/infra/storage/hotelservice"
)

// UseCase use case для создания бронирования услуги отеля
type UseCase struct {
	serviceBookingRepo ServiceBookingRepository
	hotelServiceRepo   HotelServiceRepository
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceBookingRepo ServiceBookingRepository,
	hotelServiceRepo HotelServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceBookingRepo: serviceBookingRepo,
		hotelServiceRepo:   hotelServiceRepo,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания бронирования услуги
// Поиск свободного слота и вставка выполняются в одной сериализуемой
// транзакции — два конкурентных запроса не могут занять один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateServiceBooking: service=%d, date=%s, slot=%s, guests=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.SlotTime, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateServiceBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога (меню слотов и данные для денормализации)
	service, err := uc.hotelServiceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, hotelServiceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateServiceBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateServiceBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var result *domain.ServiceBooking
	var reallocated bool

	// 3. Выполняем поиск слота и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим свободную пару (дата, слот)
		bookingDate, slot, moved, err := uc.resolveSlot(txCtx, req.ServiceID, service.SlotTimes, req.Date, req.SlotTime)
		if err != nil {
			if errors.Is(err, ErrNoAvailableSlot) {
				uc.logger.Warn("CreateServiceBooking: no available slot for service=%d", req.ServiceID)
			} else {
				uc.logger.Error("CreateServiceBooking: failed to resolve slot: %v", err)
			}
			return err
		}

		if moved {
			uc.logger.Info("CreateServiceBooking: slot reallocated for service=%d: %s %s",
				req.ServiceID, bookingDate.Format(domain.DateFormat), slot)
		}

		// 3.2. Создаем бронирование с денормализацией данных услуги
		booking := &domain.ServiceBooking{
			ServiceID:    req.ServiceID,
			BookingDate:  bookingDate,
			SlotTime:     slot,
			Guests:       req.Guests,
			GuestName:    req.GuestName,
			GuestEmail:   req.GuestEmail,
			GuestPhone:   req.GuestPhone,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Status:       domain.ServiceStatusConfirmed,
		}

		created, err := uc.serviceBookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateServiceBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		reallocated = moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateServiceBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		SlotTime:     result.SlotTime,
		Reallocated:  reallocated,
		Guests:       result.Guests,
		GuestName:    result.GuestName,
		GuestEmail:   result.GuestEmail,
		GuestPhone:   result.GuestPhone,
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
