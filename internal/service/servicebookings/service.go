package servicebookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	storage "github.com/avlpav/HRS-ReservationService/internal/infra/storage/servicebooking"
)

// Service сервис управления жизненным циклом бронирований услуг
type Service struct {
	repo      ServiceBookingRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый сервис бронирований услуг
func NewService(repo ServiceBookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID возвращает бронирование услуги по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ServiceBooking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: failed to get service booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// UpdateStatus переводит бронирование услуги в новый статус
// Переход проверяется доменной таблицей; установка того же статуса — no-op
func (s *Service) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*domain.ServiceBooking, error) {
	newStatus := domain.ServiceBookingStatus(rawStatus)
	switch newStatus {
	case domain.ServiceStatusPending, domain.ServiceStatusConfirmed, domain.ServiceStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput,
			fmt.Errorf("%w: service booking status %q", domain.ErrUnknownStatus, rawStatus))
	}

	var result *domain.ServiceBooking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		prev := booking.Status
		if err := booking.ApplyStatus(newStatus); err != nil {
			return err
		}
		if booking.Status != prev {
			if err := s.repo.UpdateStatus(txCtx, id, newStatus); err != nil {
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: service booking id=%d rejected: %v", id, err)
		} else {
			s.logger.Error("UpdateStatus: service booking id=%d failed: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: service booking id=%d -> status=%s", id, result.Status)

	return result, nil
}
