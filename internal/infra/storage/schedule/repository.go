package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/dbmetrics"
	"github.com/velitt/Studio-BookingService/pkg/psqlbuilder"
	"github.com/velitt/Studio-BookingService/pkg/types"
)

// Repository репозиторий слотов расписания студии
// Таблица schedule_slots - whitelist: дата без записей считается выходным
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSlotsByDateRange возвращает сконфигурированные слоты для диапазона дат
// Ключ карты - дата в формате YYYY-MM-DD, слоты отсортированы по возрастанию.
// Дата, отсутствующая в карте, не имеет ни одного слота (студия закрыта)
func (r *Repository) GetSlotsByDateRange(ctx context.Context, startDate, endDate time.Time) (map[string][]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "slot_time").
		From("schedule_slots").
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		OrderBy("slot_date ASC, slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]types.TimeString)

	for rows.Next() {
		var slotDate time.Time
		var slotTime types.TimeString

		if err := rows.Scan(&slotDate, &slotTime); err != nil {
			return nil, fmt.Errorf("%w: GetSlotsByDateRange - scan row: %v", ErrScanRow, err)
		}

		key := slotDate.Format(domain.DateFormat)
		result[key] = append(result[key], slotTime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDateRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetDaySlots возвращает слоты одной даты, отсортированные по возрастанию
// Пустой список означает выходной день
func (r *Repository) GetDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_time").
		From("schedule_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaySlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]types.TimeString, 0)

	for rows.Next() {
		var slotTime types.TimeString
		if err := rows.Scan(&slotTime); err != nil {
			return nil, fmt.Errorf("%w: GetDaySlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slotTime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDaySlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ReplaceDaySlots полностью заменяет слоты даты
// Пустой список слотов делает дату выходным днем.
// Вызывается внутри транзакции (delete + insert должны быть атомарны)
func (r *Repository) ReplaceDaySlots(ctx context.Context, date time.Time, slots []types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - execute delete: %v", ErrExecQuery, err)
	}

	if len(slots) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("schedule_slots").
		Columns("slot_date", "slot_time")

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(date, slot)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDaySlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
