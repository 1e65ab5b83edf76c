package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(
			"billboard_id",
			"user_id",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"content_type",
			"video_duration",
			"reputation",
			"price",
			"status",
		).
		Values(
			booking.BillboardID,
			booking.UserID,
			booking.StartDate.Format(domain.DateFormat),
			booking.EndDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.ContentType,
			booking.VideoDuration,
			booking.Reputation,
			booking.Price,
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

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectBookings().Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	builder := selectBookings().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC", "start_time DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*status)})
	}

	return r.queryBookings(ctx, "GetByUserID", builder)
}

// List административный список бронирований с фильтрами и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.queryBookings(ctx, "List", listQuery(filter))
}

// GetOverlapping возвращает бронирования щита в статусах statuses,
// период которых пересекается с [from, to].
// Внутри транзакции строки блокируются (FOR UPDATE) для проверки ёмкости.
func (r *Repository) GetOverlapping(ctx context.Context, billboardID int64, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	builder := overlappingQuery(billboardID, from, to, statuses, dbmetrics.IsInTransaction(ctx))
	return r.queryBookings(ctx, "GetOverlapping", builder)
}

// ListSuspicious страница бронирований с ценой выше threshold и id > afterID
func (r *Repository) ListSuspicious(ctx context.Context, threshold float64, afterID int64, limit int) ([]*domain.Booking, error) {
	return r.queryBookings(ctx, "ListSuspicious", suspiciousQuery(threshold, afterID, uint64(limit)))
}

// UpdatePrice снижает цену бронирования.
// Возвращает false, если цена уже не выше newPrice (другой запрос успел исправить её).
func (r *Repository) UpdatePrice(ctx context.Context, id int64, newPrice float64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updatePriceQuery(id, newPrice).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: UpdatePrice - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: UpdatePrice - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: UpdatePrice - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование с указанием причины и суммы возврата
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string, refund float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", domain.StatusCancelled).
		Set("refund_amount", refund).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) queryBookings(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в порядке bookingColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var videoDuration, reputation sql.NullInt64
	var refund sql.NullFloat64
	var reason sql.NullString
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BillboardID,
		&booking.UserID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.ContentType,
		&videoDuration,
		&reputation,
		&booking.Price,
		&booking.Status,
		&refund,
		&reason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if videoDuration.Valid {
		v := int(videoDuration.Int64)
		booking.VideoDuration = &v
	}
	if reputation.Valid {
		v := int(reputation.Int64)
		booking.Reputation = &v
	}
	if refund.Valid {
		booking.RefundAmount = &refund.Float64
	}
	if reason.Valid {
		booking.CancellationReason = &reason.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
