package billboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardService/pkg/psqlbuilder"
)

const billboardsTable = "billboards"

// Repository репозиторий щитов. Щиты создаются внешним сервисом,
// здесь только чтение и обновление цен слотов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория щитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает щит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Billboard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"title",
		"location",
		"type",
		"price",
		"slot_price_morning",
		"slot_price_afternoon",
		"slot_price_evening",
		"slot_price_night",
		"created_at",
		"updated_at",
	).
		From(billboardsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Billboard
	var price sql.NullFloat64
	var morning, afternoon, evening, night sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.OwnerID,
		&b.Title,
		&b.Location,
		&b.Type,
		&price,
		&morning,
		&afternoon,
		&evening,
		&night,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBillboardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan billboard: %v", ErrScanRow, err)
	}

	b.Price = price.Float64
	b.SlotPricing = domain.SlotPricing{
		Morning:   nullableFloat(morning),
		Afternoon: nullableFloat(afternoon),
		Evening:   nullableFloat(evening),
		Night:     nullableFloat(night),
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// UpdateSlotPricing обновляет цены слотов щита (nil сбрасывает цену слота)
func (r *Repository) UpdateSlotPricing(ctx context.Context, id int64, pricing domain.SlotPricing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateSlotPricingQuery(id, pricing).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotPricing - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotPricing - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotPricing - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBillboardNotFound
	}

	return nil
}

func updateSlotPricingQuery(id int64, pricing domain.SlotPricing) squirrel.UpdateBuilder {
	return psqlbuilder.Update(billboardsTable).
		Set("slot_price_morning", pricing.Morning).
		Set("slot_price_afternoon", pricing.Afternoon).
		Set("slot_price_evening", pricing.Evening).
		Set("slot_price_night", pricing.Night).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
