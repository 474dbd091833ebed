package create_service_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	hotelServiceRepo "github.com/avlpav/HRS-ReservationService/internal/infra/storage/hotelservice"
	"github.com/avlpav/HRS-ReservationService/pkg/types"
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

type fakeServiceBookingRepo struct {
	// занятые слоты по дате "YYYY-MM-DD"
	booked map[string][]types.TimeString

	slotCalls int
	created   *domain.ServiceBooking
}

func (r *fakeServiceBookingRepo) GetBookedSlots(_ context.Context, _ int64, date time.Time) ([]types.TimeString, error) {
	r.slotCalls++
	return r.booked[date.Format(domain.DateFormat)], nil
}

func (r *fakeServiceBookingRepo) Create(_ context.Context, booking *domain.ServiceBooking) (*domain.ServiceBooking, error) {
	created := *booking
	created.ID = 7
	created.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

type fakeCatalog struct {
	service *domain.HotelService
	err     error
}

func (c *fakeCatalog) GetByID(_ context.Context, _ int64) (*domain.HotelService, error) {
	return c.service, c.err
}

func spaService(slots string) *domain.HotelService {
	return &domain.HotelService{
		ID:        3,
		Name:      "Spa Massage",
		Price:     120,
		SlotTimes: slots,
		Active:    true,
	}
}

var requestedDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func serviceRequest(slot types.TimeString) *Request {
	return &Request{
		ServiceID:  3,
		Date:       requestedDate,
		SlotTime:   slot,
		Guests:     1,
		GuestName:  "Anna Petrova",
		GuestEmail: "anna@example.com",
		GuestPhone: "+79001234567",
	}
}

func newTestUseCase(repo *fakeServiceBookingRepo, catalog *fakeCatalog) *UseCase {
	return NewUseCase(repo, catalog, stubTxManager{}, stubLogger{})
}

// --- Tests ---

func TestExecute_RequestedSlotFree(t *testing.T) {
	repo := &fakeServiceBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00,14:00,18:00")})

	resp, err := uc.Execute(context.Background(), serviceRequest("14:00"))

	require.NoError(t, err)
	assert.False(t, resp.Reallocated)
	assert.Equal(t, types.TimeString("14:00"), resp.SlotTime)
	assert.Equal(t, requestedDate, resp.BookingDate)
	assert.Equal(t, "confirmed", resp.Status)
	// Денормализация данных услуги
	assert.Equal(t, "Spa Massage", resp.ServiceName)
	assert.Equal(t, 120.0, resp.ServicePrice)
}

func TestExecute_BusySlotsShiftToLaterSameDay(t *testing.T) {
	// 10:00 и 14:00 заняты — запрос 10:00 уезжает на 18:00 того же дня
	repo := &fakeServiceBookingRepo{
		booked: map[string][]types.TimeString{
			"2026-03-15": {"10:00", "14:00"},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00,14:00,18:00")})

	resp, err := uc.Execute(context.Background(), serviceRequest("10:00"))

	require.NoError(t, err)
	assert.True(t, resp.Reallocated)
	assert.Equal(t, types.TimeString("18:00"), resp.SlotTime)
	assert.Equal(t, requestedDate, resp.BookingDate)
	assert.Equal(t, 1, repo.slotCalls)
}

func TestExecute_DayZeroSkipsEarlierSlots(t *testing.T) {
	// Запрошено 14:00, занято 14:00 и 18:00; свободное 10:00 в день запроса
	// не рассматривается — кандидат уходит на следующий день на самый ранний слот
	repo := &fakeServiceBookingRepo{
		booked: map[string][]types.TimeString{
			"2026-03-15": {"14:00", "18:00"},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00,14:00,18:00")})

	resp, err := uc.Execute(context.Background(), serviceRequest("14:00"))

	require.NoError(t, err)
	assert.True(t, resp.Reallocated)
	assert.Equal(t, types.TimeString("10:00"), resp.SlotTime)
	assert.Equal(t, requestedDate.AddDate(0, 0, 1), resp.BookingDate)
	assert.Equal(t, 2, repo.slotCalls)
}

func TestExecute_DayRollover(t *testing.T) {
	// Весь день занят — берём самый ранний слот следующего дня,
	// даже если он раньше запрошенного времени
	repo := &fakeServiceBookingRepo{
		booked: map[string][]types.TimeString{
			"2026-03-15": {"10:00", "14:00", "18:00"},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00,14:00,18:00")})

	resp, err := uc.Execute(context.Background(), serviceRequest("18:00"))

	require.NoError(t, err)
	assert.True(t, resp.Reallocated)
	assert.Equal(t, types.TimeString("10:00"), resp.SlotTime)
	assert.Equal(t, requestedDate.AddDate(0, 0, 1), resp.BookingDate)
}

func TestExecute_UnparseableLabelsDropped(t *testing.T) {
	// "lunch" не парсится и выпадает из меню; 10:00 занят — остаётся 18:00
	repo := &fakeServiceBookingRepo{
		booked: map[string][]types.TimeString{
			"2026-03-15": {"10:00"},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00,lunch,18:00")})

	resp, err := uc.Execute(context.Background(), serviceRequest("10:00"))

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), resp.SlotTime)
}

func TestExecute_EmptyMenuUsesRequestedSlot(t *testing.T) {
	repo := &fakeServiceBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("")})

	resp, err := uc.Execute(context.Background(), serviceRequest("16:30"))

	require.NoError(t, err)
	assert.False(t, resp.Reallocated)
	assert.Equal(t, types.TimeString("16:30"), resp.SlotTime)
	assert.Equal(t, requestedDate, resp.BookingDate)
}

func TestExecute_EmptyMenuBusyEveryDayFailsClosed(t *testing.T) {
	booked := make(map[string][]types.TimeString)
	for offset := 0; offset < domain.MaxSlotSearchDays; offset++ {
		key := requestedDate.AddDate(0, 0, offset).Format(domain.DateFormat)
		booked[key] = []types.TimeString{"16:30"}
	}
	repo := &fakeServiceBookingRepo{booked: booked}
	uc := newTestUseCase(repo, &fakeCatalog{service: spaService("")})

	_, err := uc.Execute(context.Background(), serviceRequest("16:30"))

	assert.ErrorIs(t, err, ErrNoAvailableSlot)
	assert.Nil(t, repo.created)
	assert.Equal(t, domain.MaxSlotSearchDays, repo.slotCalls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &fakeServiceBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{err: hotelServiceRepo.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), serviceRequest("10:00"))

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Zero(t, repo.slotCalls)
}

func TestExecute_ValidationRejectsBadRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero service id", mutate: func(r *Request) { r.ServiceID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty slot", mutate: func(r *Request) { r.SlotTime = "" }},
		{name: "bad slot format", mutate: func(r *Request) { r.SlotTime = "25:99" }},
		{name: "zero guests", mutate: func(r *Request) { r.Guests = 0 }},
		{name: "missing email", mutate: func(r *Request) { r.GuestEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeServiceBookingRepo{}
			uc := newTestUseCase(repo, &fakeCatalog{service: spaService("10:00")})

			req := serviceRequest("10:00")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.slotCalls)
		})
	}
}
