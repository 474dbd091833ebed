package domain

import (
	"fmt"
	"time"
)

// Единственная точка смены статусов бронирования.
// Таблицы переходов ниже закрывают все три оси (статус, оплата, верификация);
// любой вызывающий код обязан менять статусы только через Apply*-методы,
// чтобы ни один guard нельзя было обойти на отдельном call site.

// stayTransitions допустимые переходы статуса проживания
// Установка того же статуса всегда является no-op и в таблице не перечисляется
var stayTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusCheckedIn, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// serviceTransitions допустимые переходы статуса сервисного бронирования
var serviceTransitions = map[ServiceBookingStatus][]ServiceBookingStatus{
	ServiceStatusPending:   {ServiceStatusConfirmed, ServiceStatusCancelled},
	ServiceStatusConfirmed: {ServiceStatusCancelled},
	ServiceStatusCancelled: {},
}

// CanTransition проверяет допустимость перехода статуса проживания по таблице
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range stayTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ApplyStatus переводит бронирование в новый статус с проверкой guard-условий
// Побочный эффект: переход в cancelled проставляет CancelledAt
func (b *StayBooking) ApplyStatus(newStatus BookingStatus, now time.Time) error {
	// Установка того же статуса — no-op
	if newStatus == b.Status {
		return nil
	}

	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
	}

	// Guard: заселение требует одобренной верификации личности
	if newStatus == StatusCheckedIn && b.IdentityStatus != IdentityApproved {
		return fmt.Errorf("%w: current verification status is %s",
			ErrCheckInRequiresApprovedIdentity, b.IdentityStatus)
	}

	b.Status = newStatus

	if newStatus == StatusCancelled {
		b.CancelledAt = &now
	}

	return nil
}

// ApplyPaymentStatus переводит ось оплаты в новый статус
// Ось не имеет guard-условий на этом уровне: pending ⇄ paid ⇄ failed свободны.
// Проверка подписи платёжного шлюза выполняется до вызова этого метода
func (b *StayBooking) ApplyPaymentStatus(newStatus PaymentStatus) error {
	switch newStatus {
	case PaymentPending, PaymentPaid, PaymentFailed:
		b.PaymentStatus = newStatus
		return nil
	default:
		return fmt.Errorf("%w: payment status %q", ErrUnknownStatus, newStatus)
	}
}

// ApplyIdentityStatus переводит ось верификации личности в новый статус
// Guard: одобрение необратимо — approved нельзя сменить ни на что другое
func (b *StayBooking) ApplyIdentityStatus(newStatus IdentityStatus) error {
	switch newStatus {
	case IdentityPending, IdentityApproved, IdentityRejected:
	default:
		return fmt.Errorf("%w: identity status %q", ErrUnknownStatus, newStatus)
	}

	if newStatus == b.IdentityStatus {
		return nil
	}

	if b.IdentityStatus == IdentityApproved {
		return fmt.Errorf("%w: cannot change to %s", ErrIdentityAlreadyApproved, newStatus)
	}

	b.IdentityStatus = newStatus
	return nil
}

// AttachIdentityProof прикрепляет новый документ и сбрасывает верификацию
// в pending: новый документ всегда требует повторной проверки.
// Для уже одобренной верификации сброс запрещён тем же необратимым guard
func (b *StayBooking) AttachIdentityProof(proofURL, proofType string, now time.Time) error {
	if b.IdentityStatus == IdentityApproved {
		return fmt.Errorf("%w: cannot attach new proof", ErrIdentityAlreadyApproved)
	}

	b.IDProofURL = &proofURL
	b.IDProofType = &proofType
	b.IDProofUploadedAt = &now
	b.IdentityStatus = IdentityPending

	return nil
}

// CanTransitionService проверяет допустимость перехода статуса сервисного бронирования
func CanTransitionService(from, to ServiceBookingStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range serviceTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ApplyStatus переводит сервисное бронирование в новый статус
func (b *ServiceBooking) ApplyStatus(newStatus ServiceBookingStatus) error {
	if newStatus == b.Status {
		return nil
	}

	if !CanTransitionService(b.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, newStatus)
	}

	b.Status = newStatus
	return nil
}
