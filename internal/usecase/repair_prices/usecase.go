package repair_prices

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BillboardService/internal/pricing"
)

// UseCase пакетное исправление завышенных цен.
// Использует тот же Healer, что и пути чтения, поэтому результат совпадает.
type UseCase struct {
	bookingRepo BookingRepository
	healer      Healer
	policy      pricing.Policy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, healer Healer, policy pricing.Policy, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		healer:      healer,
		policy:      policy,
		logger:      logger,
	}
}

// Execute проходит по всем подозрительным бронированиям страницами по id
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Summary, error) {
	batchSize := req.BatchSize
	if batchSize < 0 {
		return nil, fmt.Errorf("%w: batch size must not be negative", ErrInvalidInput)
	}
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}

	threshold := uc.policy.Threshold()
	uc.logger.Info("RepairPrices: starting, threshold=%.2f, batch=%d", threshold, batchSize)

	summary := &Summary{ByReason: make(map[pricing.Reason]int)}

	for {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("RepairPrices: interrupted after id=%d: %v", summary.LastID, err)
			return summary, err
		}

		// 1. Следующая страница после последнего обработанного id
		page, err := uc.bookingRepo.ListSuspicious(ctx, threshold, summary.LastID, batchSize)
		if err != nil {
			uc.logger.Error("RepairPrices: failed to list bookings after id=%d: %v", summary.LastID, err)
			return summary, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 2. Исправляем каждое бронирование
		for _, booking := range page {
			before := booking.Price
			healed, res := uc.healer.HealWithResult(ctx, booking)

			summary.Scanned++
			summary.ByReason[res.Reason]++
			summary.LastID = booking.ID

			if healed != booking {
				summary.Corrected++
				summary.Saved += before - healed.Price
				uc.logger.Info("RepairPrices: booking id=%d price %.2f -> %.2f", booking.ID, before, healed.Price)
				continue
			}
			uc.logger.Info("RepairPrices: booking id=%d price %.2f unchanged (%s)", booking.ID, before, res.Reason)
		}

		if len(page) < batchSize {
			break
		}

		// 3. Продлеваем блокировку, пока идёт проход
		if req.Lease != nil {
			if err := req.Lease.Extend(ctx); err != nil {
				uc.logger.Error("RepairPrices: lost run lock after id=%d: %v", summary.LastID, err)
				return summary, fmt.Errorf("%w: %v", ErrLockLost, err)
			}
		}
	}

	uc.logger.Info("RepairPrices: done, scanned=%d, corrected=%d, saved=%.2f, reasons=%v",
		summary.Scanned, summary.Corrected, summary.Saved, summary.ByReason)

	return summary, nil
}
