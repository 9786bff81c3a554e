package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/dbmetrics"
	"github.com/velitt/Studio-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Двойное бронирование предотвращается на уровне хранилища: частичный
// уникальный индекс uq_bookings_slot на (booking_date, booking_time)
// WHERE status <> 'cancelled'. Нарушение индекса маппится в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"booking_date",
			"booking_time",
			"service_type",
			"remove_gel",
			"status",
			"name",
			"phone",
			"edit_count",
		).
		Values(
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.ServiceType,
			booking.RemoveGel,
			booking.Status,
			booking.Name,
			booking.Phone,
			booking.EditCount,
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
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetOccupiedSlots возвращает занятые (дата, время) пары за период
// Учитываются только бронирования, занимающие слот (не отмененные)
func (r *Repository) GetOccupiedSlots(ctx context.Context, startDate, endDate time.Time) ([]domain.DateSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("booking_date", "booking_time").
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": startDate}).
		Where(squirrel.LtOrEq{"booking_date": endDate}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("booking_date ASC, booking_time ASC")

	// В транзакции создания бронирования блокируем прочитанные строки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.DateSlot, 0)

	for rows.Next() {
		var slot domain.DateSlot
		if err := rows.Scan(&slot.Date, &slot.StartTime); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByUserID получает историю бронирований пользователя
// Сортировка: сначала самые свежие (по дате, затем по времени)
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"booking_date",
		"booking_time",
		"service_type",
		"remove_gel",
		"status",
		"name",
		"phone",
		"edit_count",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, booking_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.ServiceType,
			&booking.RemoveGel,
			&booking.Status,
			&booking.Name,
			&booking.Phone,
			&booking.EditCount,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
