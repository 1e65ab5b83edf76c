package estimate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
)

// UseCase use case для оценки цены бронирования
type UseCase struct {
	billboardRepo BillboardRepository
	policy        pricing.Policy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(billboardRepo BillboardRepository, policy pricing.Policy, logger Logger) *UseCase {
	return &UseCase{
		billboardRepo: billboardRepo,
		policy:        policy,
		logger:        logger,
	}
}

// Execute считает оценку цены и каноническую цену для тех же параметров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimatePrice: billboard=%d, startTime=%s", req.BillboardID, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем щит
	billboard, err := uc.billboardRepo.GetByID(ctx, req.BillboardID)
	if err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			uc.logger.Warn("EstimatePrice: billboard id=%d not found", req.BillboardID)
			return nil, ErrBillboardNotFound
		}
		uc.logger.Error("EstimatePrice: failed to get billboard id=%d: %v", req.BillboardID, err)
		return nil, fmt.Errorf("%w: failed to get billboard: %v", ErrInternal, err)
	}

	// 3. Слот и его цена
	slot, err := pricing.ClassifyStartTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slotPrice := uc.policy.ResolveSlotPrice(billboard, slot)

	// 4. Параметры показа с приведением к допустимым значениям
	duration := ptr.ValueOr(req.VideoDuration, domain.DefaultVideoDuration)
	reputation := pricing.SnapReputation(ptr.ValueOr(req.Reputation, domain.DefaultReputation))
	days := pricing.ClampDays(ptr.ValueOr(req.Days, domain.MinEstimateDays))

	// 5. Оценка и каноническая цена
	basePrice := pricing.BasePriceFor(slotPrice, duration)
	resp := &Response{
		BillboardID:    req.BillboardID,
		Slot:           slot,
		SlotPrice:      slotPrice,
		BasePrice:      basePrice,
		VideoDuration:  duration,
		Reputation:     reputation,
		Days:           days,
		EstimatedPrice: pricing.Estimate(basePrice, reputation, days),
		Price:          pricing.CalculatePrice(slotPrice, duration, reputation, days),
	}

	uc.logger.Info("EstimatePrice: billboard=%d, slot=%s, slotPrice=%.2f, estimate=%.2f, price=%.2f",
		req.BillboardID, slot, slotPrice, resp.EstimatedPrice, resp.Price)

	return resp, nil
}
