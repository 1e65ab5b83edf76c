package check_availability

import (
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// Request модель запроса доступности щита на дату
type Request struct {
	BillboardID int64
	Date        time.Time // дата без времени
}

// Response занятость щита за день
type Response struct {
	BillboardID       int64
	Date              time.Time
	Bookings          []BookingView    // пересекающиеся с днём бронирования
	SlotUsage         domain.SlotUsage // потреблённые секунды по слотам
	SlotCapacity      int64            // ёмкость слота в секундах
	RemainingCapacity domain.SlotUsage // остаток по слотам, не меньше нуля
}

// BookingView проекция бронирования для клиента
type BookingView struct {
	ID            int64
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        string
	VideoDuration int
	Reputation    int
}

func toView(b *domain.Booking) BookingView {
	return BookingView{
		ID:            b.ID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		VideoDuration: b.EffectiveVideoDuration(),
		Reputation:    b.EffectiveReputation(),
	}
}
