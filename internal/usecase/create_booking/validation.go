package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BillboardID <= 0 {
		return fmt.Errorf("%w: billboardID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidDate)
	}

	if dateOnly(req.EndDate).Before(dateOnly(req.StartDate)) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidDate)
	}

	// Некорректное время начала отсекаем здесь, иначе оно всплывёт при пересчёте цены
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime %q: %v", ErrInvalidInput, req.StartTime, err)
	}

	if !req.EndTime.IsZero() && req.EndTime.Validate() != nil {
		return fmt.Errorf("%w: invalid endTime %q", ErrInvalidInput, req.EndTime)
	}

	if !req.ContentType.IsValid() {
		return fmt.Errorf("%w: unknown contentType %q", ErrInvalidInput, req.ContentType)
	}

	if req.VideoDuration != nil && (*req.VideoDuration <= 0 || *req.VideoDuration > domain.MaxVideoDuration) {
		return fmt.Errorf("%w: videoDuration must be in 1..%d", ErrInvalidInput, domain.MaxVideoDuration)
	}

	if req.Reputation != nil && *req.Reputation <= 0 {
		return fmt.Errorf("%w: reputation must be positive", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateNotInPast бронирование не может начинаться раньше сегодняшнего дня
func validateNotInPast(startDate, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly(startDate).Before(today) {
		return fmt.Errorf("%w: startDate is in the past", ErrInvalidDate)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
