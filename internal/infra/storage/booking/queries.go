package booking

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
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
	"refund_amount",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).From(bookingsTable)
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// overlappingQuery бронирования щита в статусах statuses, период которых пересекает [from, to].
// Даты сравниваются как DATE, без часового пояса.
func overlappingQuery(billboardID int64, from, to time.Time, statuses []domain.BookingStatus, forUpdate bool) squirrel.SelectBuilder {
	q := selectBookings().
		Where(squirrel.Eq{"billboard_id": billboardID}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		Where(squirrel.LtOrEq{"start_date": to.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"end_date": from.Format(domain.DateFormat)}).
		OrderBy("id ASC")

	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

// suspiciousQuery страница бронирований с ценой выше порога, по возрастанию id после afterID
func suspiciousQuery(threshold float64, afterID int64, limit uint64) squirrel.SelectBuilder {
	return selectBookings().
		Where(squirrel.Gt{"price": threshold}).
		Where(squirrel.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(limit)
}

// listQuery административный список с фильтрами
func listQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	q := selectBookings()

	if filter.BillboardID != nil {
		q = q.Where(squirrel.Eq{"billboard_id": *filter.BillboardID})
	}
	if filter.UserID != nil {
		q = q.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	q = q.OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	return q
}

// updatePriceQuery снижает цену; условие price > newPrice делает запись монотонной
func updatePriceQuery(id int64, newPrice float64) squirrel.UpdateBuilder {
	return psqlbuilder.Update(bookingsTable).
		Set("price", newPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"price": newPrice})
}
