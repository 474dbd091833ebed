package staybookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	storage "github.com/avlpav/HRS-ReservationService/internal/infra/storage/staybooking"
	"github.com/avlpav/HRS-ReservationService/internal/service/staybookings/models"
	"github.com/avlpav/HRS-ReservationService/pkg/ptr"
)

// --- Mocks ---

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeStayRepo хранит одно бронирование и применяет узкие апдейты,
// имитируя строку в БД
type fakeStayRepo struct {
	stored *domain.StayBooking

	statusUpdates   int
	paymentUpdates  int
	identityUpdates int
	cancelCalls     int
	proofCalls      int
}

func (r *fakeStayRepo) GetByID(_ context.Context, id int64) (*domain.StayBooking, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, storage.ErrBookingNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeStayRepo) GetByGuestEmail(_ context.Context, filter domain.GuestStaysFilter) ([]*domain.StayBooking, error) {
	if r.stored == nil || r.stored.GuestEmail != filter.GuestEmail {
		return nil, nil
	}
	copied := *r.stored
	return []*domain.StayBooking{&copied}, nil
}

func (r *fakeStayRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	r.statusUpdates++
	r.stored.Status = status
	return nil
}

func (r *fakeStayRepo) Cancel(_ context.Context, _ int64, cancelledAt time.Time) error {
	r.cancelCalls++
	r.stored.Status = domain.StatusCancelled
	r.stored.CancelledAt = &cancelledAt
	return nil
}

func (r *fakeStayRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	r.paymentUpdates++
	r.stored.PaymentStatus = status
	return nil
}

func (r *fakeStayRepo) UpdateIdentityStatus(_ context.Context, _ int64, status domain.IdentityStatus) error {
	r.identityUpdates++
	r.stored.IdentityStatus = status
	return nil
}

func (r *fakeStayRepo) AttachIdentityProof(_ context.Context, _ int64, proofURL, proofType string, uploadedAt time.Time) error {
	r.proofCalls++
	r.stored.IDProofURL = &proofURL
	r.stored.IDProofType = &proofType
	r.stored.IDProofUploadedAt = &uploadedAt
	r.stored.IdentityStatus = domain.IdentityPending
	return nil
}

func storedBooking(status domain.BookingStatus, identity domain.IdentityStatus) *domain.StayBooking {
	return &domain.StayBooking{
		ID:             10,
		RoomID:         101,
		CheckIn:        time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, 2, 13, 11, 0, 0, 0, time.UTC),
		GuestEmail:     "anna@example.com",
		Status:         status,
		PaymentStatus:  domain.PaymentPending,
		IdentityStatus: identity,
	}
}

func newTestService(repo *fakeStayRepo) *Service {
	return NewService(repo, stubTxManager{}, stubLogger{})
}

// --- Tests ---

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeStayRepo{})

	_, err := svc.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusPending, domain.IdentityPending)}
	svc := newTestService(repo)

	booking, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, 1, repo.statusUpdates)
	assert.Zero(t, repo.cancelCalls)
}

func TestUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	booking, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	// Запись в хранилище не выполнялась
	assert.Zero(t, repo.statusUpdates)
	assert.Zero(t, repo.cancelCalls)
}

func TestUpdateStatus_CheckInGuard(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "checked_in"})

	assert.ErrorIs(t, err, domain.ErrCheckInRequiresApprovedIdentity)
	assert.Zero(t, repo.statusUpdates)
	assert.Equal(t, domain.StatusConfirmed, repo.stored.Status)
}

func TestUpdateStatus_CheckInAfterApproval(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityApproved)}
	svc := newTestService(repo)

	booking, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "checked_in"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, booking.Status)
	assert.Equal(t, 1, repo.statusUpdates)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusCheckedOut, domain.IdentityApproved)}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Zero(t, repo.statusUpdates)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "teleported"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_SetsTimestamp(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	booking, err := svc.Cancel(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
	require.NotNil(t, booking.CancelledAt)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Zero(t, repo.statusUpdates)
	require.NotNil(t, repo.stored.CancelledAt)
}

func TestCancel_TerminalBookingRejected(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusCheckedOut, domain.IdentityApproved)}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 10)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Zero(t, repo.cancelCalls)
}

func TestSetPaymentStatus(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	booking, err := svc.SetPaymentStatus(context.Background(), 10, &models.UpdatePaymentStatusRequest{PaymentStatus: "paid"})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, booking.PaymentStatus)
	assert.Equal(t, 1, repo.paymentUpdates)

	_, err = svc.SetPaymentStatus(context.Background(), 10, &models.UpdatePaymentStatusRequest{PaymentStatus: "refunded"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetIdentityVerification_ApprovedIsMonotonic(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	booking, err := svc.SetIdentityVerification(context.Background(), 10,
		&models.UpdateIdentityStatusRequest{IdentityStatus: "approved"})
	require.NoError(t, err)
	assert.Equal(t, domain.IdentityApproved, booking.IdentityStatus)
	assert.Equal(t, 1, repo.identityUpdates)

	// Попытка отозвать подтверждение отклоняется, состояние не меняется
	_, err = svc.SetIdentityVerification(context.Background(), 10,
		&models.UpdateIdentityStatusRequest{IdentityStatus: "rejected"})
	assert.ErrorIs(t, err, domain.ErrIdentityAlreadyApproved)
	assert.Equal(t, 1, repo.identityUpdates)
	assert.Equal(t, domain.IdentityApproved, repo.stored.IdentityStatus)
}

func TestAttachIdentityProof_ResetsToPending(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityRejected)}
	svc := newTestService(repo)

	booking, err := svc.AttachIdentityProof(context.Background(), 10, &models.AttachIdentityProofRequest{
		ProofURL:  "https://storage/proofs/10.pdf",
		ProofType: "passport",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.IdentityPending, booking.IdentityStatus)
	assert.Equal(t, 1, repo.proofCalls)
	assert.Equal(t, domain.IdentityPending, repo.stored.IdentityStatus)
	require.NotNil(t, repo.stored.IDProofURL)
}

func TestAttachIdentityProof_ApprovedIsLocked(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityApproved)}
	svc := newTestService(repo)

	_, err := svc.AttachIdentityProof(context.Background(), 10, &models.AttachIdentityProofRequest{
		ProofURL:  "https://storage/proofs/10.pdf",
		ProofType: "passport",
	})

	assert.ErrorIs(t, err, domain.ErrIdentityAlreadyApproved)
	assert.Zero(t, repo.proofCalls)
}

func TestAttachIdentityProof_ValidatesInput(t *testing.T) {
	svc := newTestService(&fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)})

	_, err := svc.AttachIdentityProof(context.Background(), 10, &models.AttachIdentityProofRequest{ProofType: "passport"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AttachIdentityProof(context.Background(), 10, &models.AttachIdentityProofRequest{ProofURL: "https://x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetGuestStays_StatusFilterParsing(t *testing.T) {
	repo := &fakeStayRepo{stored: storedBooking(domain.StatusConfirmed, domain.IdentityPending)}
	svc := newTestService(repo)

	stays, err := svc.GetGuestStays(context.Background(), &models.GetGuestStaysRequest{
		GuestEmail: "anna@example.com",
		Status:     ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Len(t, stays, 1)

	_, err = svc.GetGuestStays(context.Background(), &models.GetGuestStaysRequest{
		GuestEmail: "anna@example.com",
		Status:     ptr.Ptr("parked"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetGuestStays(context.Background(), &models.GetGuestStaysRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
