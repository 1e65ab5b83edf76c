package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
)

// UseCase use case для проверки занятости слотов щита на дату
type UseCase struct {
	bookingRepo   BookingRepository
	billboardRepo BillboardRepository
	location      *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// location задаёт границы суток; nil означает UTC.
func NewUseCase(
	bookingRepo BookingRepository,
	billboardRepo BillboardRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		billboardRepo: billboardRepo,
		location:      location,
		logger:        logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: billboard=%d, date=%s", req.BillboardID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	startOfDay, _ := pricing.DayBounds(req.Date, uc.location)

	// 2. Проверяем, что щит существует. Отсутствующий щит даёт пустой результат
	if _, err := uc.billboardRepo.GetByID(ctx, req.BillboardID); err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			uc.logger.Warn("CheckAvailability: billboard id=%d not found, returning empty result", req.BillboardID)
			return uc.buildResponse(req.BillboardID, startOfDay, pricing.Availability{}), nil
		}
		uc.logger.Error("CheckAvailability: failed to get billboard id=%d: %v", req.BillboardID, err)
		return nil, fmt.Errorf("%w: failed to get billboard: %v", ErrInternal, err)
	}

	// 3. Получаем занимающие бронирования, пересекающиеся с днём
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, req.BillboardID, startOfDay, startOfDay, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Повторно фильтруем и раскладываем потребление по слотам
	availability := pricing.Aggregate(bookings, startOfDay, uc.location)
	for _, b := range availability.Skipped {
		uc.logger.Warn("CheckAvailability: booking id=%d has invalid startTime %q, usage skipped", b.ID, b.StartTime)
	}

	uc.logger.Info("CheckAvailability: billboard=%d, date=%s, bookings=%d, usage=%+v",
		req.BillboardID, startOfDay.Format(domain.DateFormat), len(availability.Bookings), availability.SlotUsage)

	return uc.buildResponse(req.BillboardID, startOfDay, availability), nil
}

func (uc *UseCase) buildResponse(billboardID int64, date time.Time, availability pricing.Availability) *Response {
	views := make([]BookingView, 0, len(availability.Bookings))
	for _, b := range availability.Bookings {
		views = append(views, toView(b))
	}

	return &Response{
		BillboardID:       billboardID,
		Date:              date,
		Bookings:          views,
		SlotUsage:         availability.SlotUsage,
		SlotCapacity:      pricing.SlotDurationSeconds,
		RemainingCapacity: availability.Remaining(),
	}
}
