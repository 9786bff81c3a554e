package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velitt/Studio-BookingService/internal/domain"
	"github.com/velitt/Studio-BookingService/pkg/dbmetrics"
	"github.com/velitt/Studio-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает клиента по стабильному идентификатору
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"name",
		"phone",
		"member_code",
		"is_blacklisted",
		"created_at",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.UserID,
		&customer.Name,
		&customer.Phone,
		&customer.MemberCode,
		&customer.IsBlacklisted,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}

// Upsert создает клиента или обновляет имя/телефон существующего
//
// Семантика member_code: код назначается один раз и никогда не перезаписывается.
// COALESCE(NULLIF(...)) оставляет уже сохраненный непустой код, даже если
// в запросе пришел другой; пустой код в запросе никогда не затирает сохраненный.
// is_blacklisted намеренно не входит в списки колонок - его выставляет только
// административный процесс
func (r *Repository) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"user_id",
			"name",
			"phone",
			"member_code",
		).
		Values(
			customer.UserID,
			customer.Name,
			customer.Phone,
			customer.MemberCode,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			member_code = COALESCE(NULLIF(customers.member_code, ''), EXCLUDED.member_code),
			updated_at = NOW()
		RETURNING member_code, is_blacklisted, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.MemberCode,
		&customer.IsBlacklisted,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return customer, nil
}
