package servicebooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/pkg/dbmetrics"
	"github.com/avlpav/HRS-ReservationService/pkg/psqlbuilder"
	"github.com/avlpav/HRS-ReservationService/pkg/types"
)

// serviceBookingColumns полный список колонок таблицы service_bookings
var serviceBookingColumns = []string{
	"id",
	"service_id",
	"booking_date",
	"slot_time",
	"guests",
	"guest_name",
	"guest_email",
	"guest_phone",
	"service_name",
	"service_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями услуг отеля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое сервисное бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.ServiceBooking) (*domain.ServiceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_bookings").
		Columns(
			"service_id",
			"booking_date",
			"slot_time",
			"guests",
			"guest_name",
			"guest_email",
			"guest_phone",
			"service_name",
			"service_price",
			"status",
		).
		Values(
			booking.ServiceID,
			booking.BookingDate,
			booking.SlotTime,
			booking.Guests,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.ServiceName,
			booking.ServicePrice,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает сервисное бронирование по ID
// Внутри транзакции добавляет FOR UPDATE
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceBookingColumns...).
		From("service_bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.ServiceBooking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.SlotTime,
		&booking.Guests,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetBookedSlots возвращает метки слотов, занятые активными бронированиями
// услуги на указанную календарную дату
// Внутри транзакции блокирует найденные строки FOR UPDATE, чтобы два
// конкурентных создания не заняли один слот
func (r *Repository) GetBookedSlots(ctx context.Context, serviceID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveServiceStatuses))
	for i, s := range domain.ActiveServiceStatuses {
		activeStatusStrings[i] = string(s)
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	selectBuilder := psqlbuilder.Select("slot_time").
		From("service_bookings").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"booking_date": day}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		OrderBy("slot_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: GetBookedSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// UpdateStatus обновляет статус сервисного бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ServiceBookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
