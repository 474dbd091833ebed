package domain

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса бронирования
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrCheckInRequiresApprovedIdentity возвращается при попытке заселения
	// без одобренной верификации личности
	ErrCheckInRequiresApprovedIdentity = errors.New("domain: check-in requires approved identity verification")

	// ErrIdentityAlreadyApproved возвращается при попытке изменить
	// одобренную верификацию личности (одобрение необратимо)
	ErrIdentityAlreadyApproved = errors.New("domain: identity verification is already approved")

	// ErrUnknownStatus возвращается при неизвестном значении статуса
	ErrUnknownStatus = errors.New("domain: unknown status value")
)
