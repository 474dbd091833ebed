package create_stay_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/internal/integrations/paymentgateway"
)

// --- Mocks ---

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeStayRepo вычисляет пересечения по полуинтервальному правилу
// над заранее заданным списком существующих бронирований
type fakeStayRepo struct {
	existing []*domain.StayBooking

	overlapCalls int
	created      *domain.StayBooking
	orderID      *string

	createErr error
}

func (r *fakeStayRepo) GetActiveOverlapping(_ context.Context, roomID int64, start, end time.Time) ([]*domain.StayBooking, error) {
	r.overlapCalls++

	var result []*domain.StayBooking
	for _, b := range r.existing {
		if b.RoomID == roomID && b.CheckIn.Before(end) && b.CheckOut.After(start) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeStayRepo) Create(_ context.Context, booking *domain.StayBooking) (*domain.StayBooking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

func (r *fakeStayRepo) SetPaymentOrderID(_ context.Context, _ int64, orderID string) error {
	r.orderID = &orderID
	return nil
}

type fakePaymentClient struct {
	order *paymentgateway.Order
	err   error
}

func (c *fakePaymentClient) CreateOrderWithGracefulDegradation(_ context.Context, _ *paymentgateway.CreateOrderRequest) (*paymentgateway.Order, error) {
	return c.order, c.err
}

func day(d int, hour int) time.Time {
	return time.Date(2026, 2, d, hour, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		RoomID:        101,
		CheckIn:       day(11, 14),
		CheckOut:      day(14, 14),
		Guests:        2,
		Rooms:         1,
		RoomPrice:     300,
		Taxes:         36,
		ServiceCharge: 15,
		TotalPrice:    351,
		GuestName:     "Anna Petrova",
		GuestEmail:    "anna@example.com",
		GuestPhone:    "+79001234567",
	}
}

func newTestUseCase(repo *fakeStayRepo, client *fakePaymentClient) *UseCase {
	if client == nil {
		client = &fakePaymentClient{err: paymentgateway.ErrServiceDegraded}
	}
	return NewUseCase(repo, client, stubTxManager{}, stubLogger{})
}

// --- Tests ---

func TestExecute_FreeWindowKeptAsRequested(t *testing.T) {
	repo := &fakeStayRepo{}
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Reallocated)
	assert.Equal(t, day(11, 14), resp.CheckIn)
	assert.Equal(t, day(14, 14), resp.CheckOut)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, "pending", resp.IdentityStatus)
	assert.Equal(t, 1, repo.overlapCalls)
}

func TestExecute_ConflictShiftsToLatestCheckout(t *testing.T) {
	// Комната занята 10–13 февраля; запрос на 11–14 сдвигается на 13–16
	repo := &fakeStayRepo{
		existing: []*domain.StayBooking{
			{ID: 1, RoomID: 101, CheckIn: day(10, 14), CheckOut: day(13, 14), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Reallocated)
	assert.Equal(t, day(13, 14), resp.CheckIn)
	assert.Equal(t, day(16, 14), resp.CheckOut)
	// Длительность сохранена
	assert.Equal(t, resp.CheckOut.Sub(resp.CheckIn), day(14, 14).Sub(day(11, 14)))
	assert.Equal(t, 2, repo.overlapCalls)
}

func TestExecute_ShiftPicksLatestAmongMultipleOverlaps(t *testing.T) {
	repo := &fakeStayRepo{
		existing: []*domain.StayBooking{
			{ID: 1, RoomID: 101, CheckIn: day(10, 14), CheckOut: day(12, 14), Status: domain.StatusConfirmed},
			{ID: 2, RoomID: 101, CheckIn: day(12, 14), CheckOut: day(15, 14), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Reallocated)
	assert.Equal(t, day(15, 14), resp.CheckIn)
	assert.Equal(t, day(18, 14), resp.CheckOut)
}

func TestExecute_TouchingWindowsDoNotConflict(t *testing.T) {
	// Полуинтервалы: выезд в момент заезда следующего — не пересечение
	repo := &fakeStayRepo{
		existing: []*domain.StayBooking{
			{ID: 1, RoomID: 101, CheckIn: day(8, 14), CheckOut: day(11, 14), Status: domain.StatusConfirmed},
			{ID: 2, RoomID: 101, CheckIn: day(14, 14), CheckOut: day(17, 14), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Reallocated)
	assert.Equal(t, day(11, 14), resp.CheckIn)
}

func TestExecute_OtherRoomBookingsIgnored(t *testing.T) {
	repo := &fakeStayRepo{
		existing: []*domain.StayBooking{
			{ID: 1, RoomID: 202, CheckIn: day(10, 14), CheckOut: day(15, 14), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Reallocated)
}

func TestExecute_ValidationRejectsDegenerateWindow(t *testing.T) {
	tests := []struct {
		name     string
		checkOut time.Time
	}{
		{name: "checkOut equals checkIn", checkOut: day(11, 14)},
		{name: "checkOut before checkIn", checkOut: day(10, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStayRepo{}
			uc := newTestUseCase(repo, nil)

			req := validRequest()
			req.CheckOut = tt.checkOut

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			// Отклонено до любого обращения к хранилищу
			assert.Zero(t, repo.overlapCalls)
			assert.Nil(t, repo.created)
		})
	}
}

func TestExecute_ValidationRejectsBadPrices(t *testing.T) {
	repo := &fakeStayRepo{}
	uc := newTestUseCase(repo, nil)

	req := validRequest()
	req.TotalPrice = -1

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.overlapCalls)
}

// alwaysBusyRepo возвращает пересечение для любого кандидата
type alwaysBusyRepo struct {
	overlapCalls int
	created      *domain.StayBooking
}

func (r *alwaysBusyRepo) GetActiveOverlapping(_ context.Context, roomID int64, start, end time.Time) ([]*domain.StayBooking, error) {
	r.overlapCalls++
	return []*domain.StayBooking{
		{ID: 1, RoomID: roomID, CheckIn: start, CheckOut: end.Add(time.Hour), Status: domain.StatusConfirmed},
	}, nil
}

func (r *alwaysBusyRepo) Create(_ context.Context, booking *domain.StayBooking) (*domain.StayBooking, error) {
	r.created = booking
	return booking, nil
}

func (r *alwaysBusyRepo) SetPaymentOrderID(_ context.Context, _ int64, _ string) error {
	return nil
}

func TestExecute_ExhaustionFailsClosed(t *testing.T) {
	repo := &alwaysBusyRepo{}
	uc := NewUseCase(repo, &fakePaymentClient{err: paymentgateway.ErrServiceDegraded}, stubTxManager{}, stubLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoAvailableWindow)
	assert.Nil(t, repo.created)
	assert.Equal(t, domain.MaxWindowShiftAttempts, repo.overlapCalls)
}

func TestExecute_PaymentOrderStored(t *testing.T) {
	repo := &fakeStayRepo{}
	client := &fakePaymentClient{order: &paymentgateway.Order{ID: "ord-123", Status: "created"}}
	uc := newTestUseCase(repo, client)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.PaymentOrderID)
	assert.Equal(t, "ord-123", *resp.PaymentOrderID)
	require.NotNil(t, repo.orderID)
	assert.Equal(t, "ord-123", *repo.orderID)
}

func TestExecute_PaymentGatewayDownDoesNotFailBooking(t *testing.T) {
	repo := &fakeStayRepo{}
	client := &fakePaymentClient{err: paymentgateway.ErrServiceDegraded}
	uc := newTestUseCase(repo, client)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.PaymentOrderID)
	assert.NotNil(t, repo.created)
}

func TestExecute_CreateFailureReturnsInternal(t *testing.T) {
	repo := &fakeStayRepo{createErr: errors.New("db down")}
	uc := newTestUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
