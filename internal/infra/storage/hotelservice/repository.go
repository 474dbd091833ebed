package hotelservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlpav/HRS-ReservationService/internal/domain"
	"github.com/avlpav/HRS-ReservationService/pkg/dbmetrics"
	"github.com/avlpav/HRS-ReservationService/pkg/psqlbuilder"
)

// Repository читающий репозиторий каталога услуг отеля
// Каталог ведётся админкой; здесь нужен только для меню слотов и цены
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активную услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HotelService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"price",
		"slot_times",
		"active",
		"created_at",
		"updated_at",
	).
		From("hotel_services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.HotelService
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.Price,
		&service.SlotTimes,
		&service.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}
