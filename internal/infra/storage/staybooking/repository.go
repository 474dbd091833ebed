package staybooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/pkg/dbmetrics"
	"github.com/avlpav/HRS-ReservationService/pkg/psqlbuilder"
)

// stayColumns полный список колонок таблицы stay_bookings
var stayColumns = []string{
	"id",
	"room_id",
	"check_in",
	"check_out",
	"guests",
	"rooms",
	"room_price",
	"taxes",
	"service_charge",
	"total_price",
	"guest_name",
	"guest_email",
	"guest_phone",
	"status",
	"payment_status",
	"id_verification_status",
	"id_proof_url",
	"id_proof_type",
	"id_proof_uploaded_at",
	"payment_order_id",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями проживания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований проживания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование проживания
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.StayBooking) (*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stay_bookings").
		Columns(
			"room_id",
			"check_in",
			"check_out",
			"guests",
			"rooms",
			"room_price",
			"taxes",
			"service_charge",
			"total_price",
			"guest_name",
			"guest_email",
			"guest_phone",
			"status",
			"payment_status",
			"id_verification_status",
		).
		Values(
			booking.RoomID,
			booking.CheckIn,
			booking.CheckOut,
			booking.Guests,
			booking.Rooms,
			booking.RoomPrice,
			booking.Taxes,
			booking.ServiceCharge,
			booking.TotalPrice,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.Status,
			booking.PaymentStatus,
			booking.IdentityStatus,
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

// GetByID получает бронирование по ID
// Внутри транзакции добавляет FOR UPDATE — смена статуса выполняется
// по схеме «прочитать с блокировкой, проверить guard, записать»
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(stayColumns...).
		From("stay_bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanStayBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveOverlapping получает активные бронирования комнаты,
// пересекающиеся с полуинтервалом [start, end)
//
// Пересечение: existing.check_in < end AND existing.check_out > start.
// Граничные случаи (выезд ровно в момент заезда) пересечением не считаются.
// Внутри транзакции строки блокируются FOR UPDATE, чтобы два конкурентных
// создания не увидели одновременно «окно свободно»
func (r *Repository) GetActiveOverlapping(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStayStatuses))
	for i, s := range domain.ActiveStayStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(stayColumns...).
		From("stay_bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.Eq{"cancelled_at": nil}).
		Where(squirrel.Lt{"check_in": end}).
		Where(squirrel.Gt{"check_out": start}).
		OrderBy("check_out ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStayBookings(rows)
}

// GetByGuestEmail получает историю бронирований гостя
func (r *Repository) GetByGuestEmail(ctx context.Context, filter domain.GuestStaysFilter) ([]*domain.StayBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(stayColumns...).
		From("stay_bookings").
		Where(squirrel.Eq{"guest_email": filter.GuestEmail}).
		OrderBy("check_in DESC")

	// Фильтрация по статусу, если указан
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStayStatuses))
		for i, s := range domain.InactiveStayStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStayBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "UpdateStatus", updateBuilder)
}

// Cancel отменяет бронирование, проставляя момент отмены
// Момент отмены существует тогда и только тогда, когда статус = cancelled
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", cancelledAt).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "Cancel", updateBuilder)
}

// UpdatePaymentStatus обновляет статус оплаты
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("payment_status", status).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "UpdatePaymentStatus", updateBuilder)
}

// UpdateIdentityStatus обновляет статус верификации личности
func (r *Repository) UpdateIdentityStatus(ctx context.Context, id int64, status domain.IdentityStatus) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("id_verification_status", status).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "UpdateIdentityStatus", updateBuilder)
}

// AttachIdentityProof сохраняет ссылку на новый документ и сбрасывает
// верификацию в pending (новый документ всегда проверяется заново)
func (r *Repository) AttachIdentityProof(ctx context.Context, id int64, proofURL, proofType string, uploadedAt time.Time) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("id_proof_url", proofURL).
		Set("id_proof_type", proofType).
		Set("id_proof_uploaded_at", uploadedAt).
		Set("id_verification_status", domain.IdentityPending).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "AttachIdentityProof", updateBuilder)
}

// SetPaymentOrderID сохраняет ссылку на заказ в платёжном шлюзе
func (r *Repository) SetPaymentOrderID(ctx context.Context, id int64, orderID string) error {
	updateBuilder := psqlbuilder.Update("stay_bookings").
		Set("payment_order_id", orderID).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, "SetPaymentOrderID", updateBuilder)
}

// execUpdate выполняет UPDATE и проверяет, что строка была найдена
func (r *Repository) execUpdate(ctx context.Context, method string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanStayBooking сканирует одну строку в модель бронирования
func scanStayBooking(row rowScanner) (*domain.StayBooking, error) {
	var booking domain.StayBooking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.Rooms,
		&booking.RoomPrice,
		&booking.Taxes,
		&booking.ServiceCharge,
		&booking.TotalPrice,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.IdentityStatus,
		&booking.IDProofURL,
		&booking.IDProofType,
		&booking.IDProofUploadedAt,
		&booking.PaymentOrderID,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanStayBookings сканирует результаты запроса в слайс бронирований
func scanStayBookings(rows *sql.Rows) ([]*domain.StayBooking, error) {
	bookings := make([]*domain.StayBooking, 0)

	for rows.Next() {
		booking, err := scanStayBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanStayBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStayBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
