package pricing

import (
	"math"
	"time"
)

// Refund сумма возврата при отмене на дату cancelDate:
// доля дней периода, которые строго позже даты отмены. До начала периода возвращается всё.
// Округляется до копеек.
func Refund(price float64, start, end, cancelDate time.Time) float64 {
	from := calendarDate(start, time.UTC)
	to := calendarDate(end, time.UTC)
	cancel := calendarDate(cancelDate, time.UTC)

	total := InclusiveDays(from, to)
	if price <= 0 || total <= 0 {
		return 0
	}

	var remaining int
	switch {
	case cancel.Before(from):
		remaining = total
	case !cancel.Before(to):
		remaining = 0
	default:
		remaining = InclusiveDays(cancel, to) - 1
	}

	return math.Round(price*float64(remaining)/float64(total)*100) / 100
}
