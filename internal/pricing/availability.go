package pricing

import (
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// Availability занятость щита за один день
type Availability struct {
	// Bookings пересекающиеся с днём занимающие бронирования
	Bookings []*domain.Booking
	// SlotUsage потреблённые секунды по слотам
	SlotUsage domain.SlotUsage
	// Skipped бронирования с некорректным startTime: возвращаются, но не учитываются в SlotUsage
	Skipped []*domain.Booking
}

// Remaining оставшаяся ёмкость слотов
func (a Availability) Remaining() domain.SlotUsage {
	return a.SlotUsage.Remaining(SlotDurationSeconds)
}

// DayBounds границы суток date в loc: 00:00:00.000 и 23:59:59.999
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	startOfDay := calendarDate(date, loc)
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Millisecond)
	return startOfDay, endOfDay
}

// calendarDate полночь той же календарной даты в loc.
// Даты бронирований хранятся без времени, поэтому берём год, месяц и день как есть.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// OverlapsDay проверяет пересечение периода бронирования с сутками:
// начинается внутри суток, заканчивается внутри суток, или накрывает их целиком
func OverlapsDay(b *domain.Booking, startOfDay, endOfDay time.Time) bool {
	loc := startOfDay.Location()
	start := calendarDate(b.StartDate, loc)
	end := calendarDate(b.EndDate, loc)

	startsWithin := !start.Before(startOfDay) && !start.After(endOfDay)
	endsWithin := !end.Before(startOfDay) && !end.After(endOfDay)
	spans := start.Before(startOfDay) && end.After(endOfDay)

	return startsWithin || endsWithin || spans
}

// Aggregate отбирает занимающие бронирования, пересекающиеся с днём date,
// и суммирует их потребление по слотам
func Aggregate(bookings []*domain.Booking, date time.Time, loc *time.Location) Availability {
	startOfDay, endOfDay := DayBounds(date, loc)

	result := Availability{Bookings: make([]*domain.Booking, 0, len(bookings))}
	for _, b := range bookings {
		if b == nil || !b.IsOccupying() || !OverlapsDay(b, startOfDay, endOfDay) {
			continue
		}
		result.Bookings = append(result.Bookings, b)

		slot, err := ClassifyStartTime(b.StartTime)
		if err != nil {
			result.Skipped = append(result.Skipped, b)
			continue
		}
		result.SlotUsage.Add(slot, DailyConsumption(b.EffectiveVideoDuration(), b.EffectiveReputation()))
	}

	return result
}

// Days календарные дни периода [start, end] включительно
func Days(start, end time.Time, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	from := calendarDate(start, loc)
	to := calendarDate(end, loc)

	days := make([]time.Time, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
