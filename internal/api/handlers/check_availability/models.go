package check_availability

import (
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-BillboardService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success           bool             `json:"success"`
	BillboardID       int64            `json:"billboardId"`
	Date              string           `json:"date"`
	Bookings          []BookingItem    `json:"bookings"`
	SlotUsage         domain.SlotUsage `json:"slotUsage"`
	SlotCapacity      int64            `json:"slotCapacity"`
	RemainingCapacity domain.SlotUsage `json:"remainingCapacity"`
}

// BookingItem бронирование, занимающее эфир в этот день
type BookingItem struct {
	ID            int64  `json:"id"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
	VideoDuration int    `json:"videoDuration"`
	Reputation    int    `json:"reputation"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(billboardID int64, dateStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		BillboardID: billboardID,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	items := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		items[i] = BookingItem{
			ID:            b.ID,
			StartDate:     b.StartDate.Format(domain.DateFormat),
			EndDate:       b.EndDate.Format(domain.DateFormat),
			StartTime:     b.StartTime.String(),
			EndTime:       b.EndTime.String(),
			Status:        b.Status,
			VideoDuration: b.VideoDuration,
			Reputation:    b.Reputation,
		}
	}

	return &AvailabilityResponse{
		Success:           true,
		BillboardID:       resp.BillboardID,
		Date:              resp.Date.Format(domain.DateFormat),
		Bookings:          items,
		SlotUsage:         resp.SlotUsage,
		SlotCapacity:      resp.SlotCapacity,
		RemainingCapacity: resp.RemainingCapacity,
	}
}
