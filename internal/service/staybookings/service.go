package staybookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	storage "github.com/avlpav/HRS-ReservationService/internal/infra/storage/staybooking"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
)

// Service сервис управления жизненным циклом бронирований проживания
//
// Все мутации статусов выполняются по схеме «прочитать с блокировкой,
// проверить переход в домене, записать» внутри одной транзакции
type Service struct {
	repo         StayBookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис бронирований проживания
func NewService(repo StayBookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.StayBooking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// GetGuestStays возвращает бронирования гостя по email
// По умолчанию возвращаются только активные бронирования
func (s *Service) GetGuestStays(ctx context.Context, req *models.GetGuestStaysRequest) ([]*domain.StayBooking, error) {
	if req.GuestEmail == "" {
		return nil, fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}

	filter := domain.GuestStaysFilter{
		GuestEmail:      req.GuestEmail,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	bookings, err := s.repo.GetByGuestEmail(ctx, filter)
	if err != nil {
		s.logger.Error("GetGuestStays: failed to get bookings for %s: %v", req.GuestEmail, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// UpdateStatus переводит бронирование в новый статус жизненного цикла
//
// Переход проверяется доменной таблицей переходов; нарушение guard'а
// (например check-in без подтвержденной личности) возвращается как
// доменная ошибка без изменения состояния
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*domain.StayBooking, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.mutate(ctx, id, "UpdateStatus", func(txCtx context.Context, booking *domain.StayBooking) error {
		prev := booking.Status
		if err := booking.ApplyStatus(newStatus, s.timeProvider.Now()); err != nil {
			return err
		}
		if booking.Status == prev {
			// Повторная установка того же статуса — no-op
			return nil
		}

		if newStatus == domain.StatusCancelled {
			return s.repo.Cancel(txCtx, id, *booking.CancelledAt)
		}
		return s.repo.UpdateStatus(txCtx, id, newStatus)
	})
}

// Cancel отменяет бронирование с фиксацией времени отмены
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.StayBooking, error) {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: string(domain.StatusCancelled)})
}

// SetPaymentStatus устанавливает статус оплаты бронирования
// Ось оплаты не имеет ограничений на переходы между известными статусами
func (s *Service) SetPaymentStatus(ctx context.Context, id int64, req *models.UpdatePaymentStatusRequest) (*domain.StayBooking, error) {
	newStatus, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.mutate(ctx, id, "SetPaymentStatus", func(txCtx context.Context, booking *domain.StayBooking) error {
		prev := booking.PaymentStatus
		if err := booking.ApplyPaymentStatus(newStatus); err != nil {
			return err
		}
		if booking.PaymentStatus == prev {
			return nil
		}
		return s.repo.UpdatePaymentStatus(txCtx, id, newStatus)
	})
}

// SetIdentityVerification устанавливает статус верификации личности
// Статус approved монотонный: после подтверждения личность не может
// быть отозвана никакой последовательностью вызовов
func (s *Service) SetIdentityVerification(ctx context.Context, id int64, req *models.UpdateIdentityStatusRequest) (*domain.StayBooking, error) {
	newStatus, err := models.ToDomainIdentityStatus(req.IdentityStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.mutate(ctx, id, "SetIdentityVerification", func(txCtx context.Context, booking *domain.StayBooking) error {
		prev := booking.IdentityStatus
		if err := booking.ApplyIdentityStatus(newStatus); err != nil {
			return err
		}
		if booking.IdentityStatus == prev {
			return nil
		}
		return s.repo.UpdateIdentityStatus(txCtx, id, newStatus)
	})
}

// AttachIdentityProof прикрепляет документ гостя и сбрасывает статус
// верификации в pending для повторной проверки
func (s *Service) AttachIdentityProof(ctx context.Context, id int64, req *models.AttachIdentityProofRequest) (*domain.StayBooking, error) {
	if req.ProofURL == "" {
		return nil, fmt.Errorf("%w: proofUrl is required", ErrInvalidInput)
	}
	if req.ProofType == "" {
		return nil, fmt.Errorf("%w: proofType is required", ErrInvalidInput)
	}

	return s.mutate(ctx, id, "AttachIdentityProof", func(txCtx context.Context, booking *domain.StayBooking) error {
		uploadedAt := s.timeProvider.Now()
		if err := booking.AttachIdentityProof(req.ProofURL, req.ProofType, uploadedAt); err != nil {
			return err
		}
		return s.repo.AttachIdentityProof(txCtx, id, req.ProofURL, req.ProofType, uploadedAt)
	})
}

// mutate выполняет мутацию бронирования внутри транзакции:
// чтение строки с FOR UPDATE, доменная проверка, узкий UPDATE
func (s *Service) mutate(
	ctx context.Context,
	id int64,
	op string,
	fn func(txCtx context.Context, booking *domain.StayBooking) error,
) (*domain.StayBooking, error) {
	var result *domain.StayBooking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				return fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if err := fn(txCtx, booking); err != nil {
			return err
		}

		result = booking
		return nil
	})

	if err != nil {
		if isDomainGuardError(err) || errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d rejected: %v", op, id, err)
		} else {
			s.logger.Error("%s: booking id=%d failed: %v", op, id, err)
		}
		return nil, err
	}

	s.logger.Info("%s: booking id=%d -> status=%s payment=%s identity=%s",
		op, id, result.Status, result.PaymentStatus, result.IdentityStatus)

	return result, nil
}

// isDomainGuardError различает нарушения доменных инвариантов
// и инфраструктурные сбои для выбора уровня логирования
func isDomainGuardError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrCheckInRequiresApprovedIdentity) ||
		errors.Is(err, domain.ErrIdentityAlreadyApproved) ||
		errors.Is(err, domain.ErrUnknownStatus)
}
