package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(status BookingStatus, identity IdentityStatus) *StayBooking {
	return &StayBooking{
		ID:             1,
		RoomID:         101,
		CheckIn:        time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 2, 13, 11, 0, 0, 0, time.UTC),
		Status:         status,
		PaymentStatus:  PaymentPending,
		IdentityStatus: identity,
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to checked_in", from: StatusPending, to: StatusCheckedIn, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "confirmed to checked_in", from: StatusConfirmed, to: StatusCheckedIn, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "checked_in to checked_out", from: StatusCheckedIn, to: StatusCheckedOut, want: true},
		{name: "checked_in to cancelled", from: StatusCheckedIn, to: StatusCancelled, want: true},
		{name: "same status is allowed", from: StatusConfirmed, to: StatusConfirmed, want: true},

		{name: "confirmed to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "checked_in to confirmed", from: StatusCheckedIn, to: StatusConfirmed, want: false},
		{name: "checked_out is terminal", from: StatusCheckedOut, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "pending to checked_out", from: StatusPending, to: StatusCheckedOut, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestApplyStatus_SameStatusIsNoOp(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	err := booking.ApplyStatus(StatusConfirmed, time.Now())

	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Nil(t, booking.CancelledAt)
}

func TestApplyStatus_CheckInRequiresApprovedIdentity(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	err := booking.ApplyStatus(StatusCheckedIn, time.Now())

	assert.ErrorIs(t, err, ErrCheckInRequiresApprovedIdentity)
	assert.Equal(t, StatusConfirmed, booking.Status)

	// Отклоненная верификация тоже не пропускает заселение
	booking.IdentityStatus = IdentityRejected
	err = booking.ApplyStatus(StatusCheckedIn, time.Now())
	assert.ErrorIs(t, err, ErrCheckInRequiresApprovedIdentity)

	booking.IdentityStatus = IdentityApproved
	err = booking.ApplyStatus(StatusCheckedIn, time.Now())
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, booking.Status)
}

func TestApplyStatus_CancellationSetsTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC)
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	err := booking.ApplyStatus(StatusCancelled, now)

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, booking.Status)
	require.NotNil(t, booking.CancelledAt)
	assert.Equal(t, now, *booking.CancelledAt)
}

func TestApplyStatus_NonCancelTransitionsKeepTimestampEmpty(t *testing.T) {
	booking := newTestBooking(StatusPending, IdentityApproved)

	require.NoError(t, booking.ApplyStatus(StatusConfirmed, time.Now()))
	assert.Nil(t, booking.CancelledAt)

	require.NoError(t, booking.ApplyStatus(StatusCheckedIn, time.Now()))
	assert.Nil(t, booking.CancelledAt)

	require.NoError(t, booking.ApplyStatus(StatusCheckedOut, time.Now()))
	assert.Nil(t, booking.CancelledAt)
}

func TestApplyStatus_TerminalStatesRejectTransitions(t *testing.T) {
	checkedOut := newTestBooking(StatusCheckedOut, IdentityApproved)
	assert.ErrorIs(t, checkedOut.ApplyStatus(StatusCancelled, time.Now()), ErrInvalidTransition)

	cancelled := newTestBooking(StatusCancelled, IdentityApproved)
	assert.ErrorIs(t, cancelled.ApplyStatus(StatusConfirmed, time.Now()), ErrInvalidTransition)
}

func TestApplyPaymentStatus(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	// Ось оплаты свободна: любые переходы между известными статусами
	require.NoError(t, booking.ApplyPaymentStatus(PaymentPaid))
	assert.Equal(t, PaymentPaid, booking.PaymentStatus)

	require.NoError(t, booking.ApplyPaymentStatus(PaymentFailed))
	require.NoError(t, booking.ApplyPaymentStatus(PaymentPending))
	require.NoError(t, booking.ApplyPaymentStatus(PaymentPaid))

	err := booking.ApplyPaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, PaymentPaid, booking.PaymentStatus)
}

func TestApplyIdentityStatus_ApprovedIsMonotonic(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	require.NoError(t, booking.ApplyIdentityStatus(IdentityApproved))
	assert.Equal(t, IdentityApproved, booking.IdentityStatus)

	// Повторное approve — no-op
	require.NoError(t, booking.ApplyIdentityStatus(IdentityApproved))
	assert.Equal(t, IdentityApproved, booking.IdentityStatus)

	// Никакая последовательность вызовов не снимает approved
	assert.ErrorIs(t, booking.ApplyIdentityStatus(IdentityRejected), ErrIdentityAlreadyApproved)
	assert.ErrorIs(t, booking.ApplyIdentityStatus(IdentityPending), ErrIdentityAlreadyApproved)
	assert.Equal(t, IdentityApproved, booking.IdentityStatus)
}

func TestApplyIdentityStatus_RejectedCanBeRetried(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	require.NoError(t, booking.ApplyIdentityStatus(IdentityRejected))
	assert.Equal(t, IdentityRejected, booking.IdentityStatus)

	require.NoError(t, booking.ApplyIdentityStatus(IdentityPending))
	require.NoError(t, booking.ApplyIdentityStatus(IdentityApproved))
	assert.Equal(t, IdentityApproved, booking.IdentityStatus)
}

func TestApplyIdentityStatus_UnknownStatus(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityPending)

	assert.ErrorIs(t, booking.ApplyIdentityStatus("verified"), ErrUnknownStatus)
	assert.Equal(t, IdentityPending, booking.IdentityStatus)
}

func TestAttachIdentityProof(t *testing.T) {
	now := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)
	booking := newTestBooking(StatusConfirmed, IdentityRejected)

	err := booking.AttachIdentityProof("https://storage/proofs/42.pdf", "passport", now)

	require.NoError(t, err)
	// Новый документ сбрасывает верификацию в pending
	assert.Equal(t, IdentityPending, booking.IdentityStatus)
	require.NotNil(t, booking.IDProofURL)
	assert.Equal(t, "https://storage/proofs/42.pdf", *booking.IDProofURL)
	require.NotNil(t, booking.IDProofType)
	assert.Equal(t, "passport", *booking.IDProofType)
	require.NotNil(t, booking.IDProofUploadedAt)
	assert.Equal(t, now, *booking.IDProofUploadedAt)
}

func TestAttachIdentityProof_ApprovedIsLocked(t *testing.T) {
	booking := newTestBooking(StatusConfirmed, IdentityApproved)

	err := booking.AttachIdentityProof("https://storage/proofs/43.pdf", "id_card", time.Now())

	assert.ErrorIs(t, err, ErrIdentityAlreadyApproved)
	assert.Equal(t, IdentityApproved, booking.IdentityStatus)
	assert.Nil(t, booking.IDProofURL)
}

func TestServiceBookingApplyStatus(t *testing.T) {
	booking := &ServiceBooking{ID: 1, Status: ServiceStatusPending}

	require.NoError(t, booking.ApplyStatus(ServiceStatusConfirmed))
	assert.Equal(t, ServiceStatusConfirmed, booking.Status)

	// Повторная установка — no-op
	require.NoError(t, booking.ApplyStatus(ServiceStatusConfirmed))

	require.NoError(t, booking.ApplyStatus(ServiceStatusCancelled))
	assert.ErrorIs(t, booking.ApplyStatus(ServiceStatusConfirmed), ErrInvalidTransition)
}

func TestStayBookingIsActive(t *testing.T) {
	active := newTestBooking(StatusConfirmed, IdentityPending)
	assert.True(t, active.IsActive())

	cancelled := newTestBooking(StatusCancelled, IdentityPending)
	now := time.Now()
	cancelled.CancelledAt = &now
	assert.False(t, cancelled.IsActive())

	checkedOut := newTestBooking(StatusCheckedOut, IdentityApproved)
	assert.False(t, checkedOut.IsActive())
}
