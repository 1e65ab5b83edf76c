package billboards

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/internal/service/billboards/models"
)

// Service сервис цен щитов
type Service struct {
	billboardRepo BillboardRepository
	policy        pricing.Policy
	logger        Logger
}

// NewService создает новый экземпляр сервиса
func NewService(billboardRepo BillboardRepository, policy pricing.Policy, logger Logger) *Service {
	return &Service{
		billboardRepo: billboardRepo,
		policy:        policy,
		logger:        logger,
	}
}

// GetPricing возвращает цены слотов щита
func (s *Service) GetPricing(ctx context.Context, billboardID int64) (*models.PricingResponse, error) {
	billboard, err := s.get(ctx, "GetPricing", billboardID)
	if err != nil {
		return nil, err
	}

	if billboard.IsDigital() && !billboard.SlotPricing.IsComplete() {
		s.logger.Warn("GetPricing: digital billboard id=%d has incomplete slot pricing", billboardID)
	}

	return s.toResponse(billboard), nil
}

// UpdatePricing обновляет цены слотов. Доступно только владельцу щита.
func (s *Service) UpdatePricing(ctx context.Context, billboardID int64, req *models.UpdatePricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("UpdatePricing: billboard id=%d by user=%d", billboardID, req.UserID)

	newPricing := req.ToDomain()
	if err := validatePricing(newPricing); err != nil {
		s.logger.Warn("UpdatePricing: invalid pricing for billboard id=%d: %v", billboardID, err)
		return nil, err
	}

	billboard, err := s.get(ctx, "UpdatePricing", billboardID)
	if err != nil {
		return nil, err
	}

	if billboard.OwnerID != req.UserID {
		s.logger.Warn("UpdatePricing: user=%d is not owner of billboard id=%d", req.UserID, billboardID)
		return nil, ErrAccessDenied
	}

	if err := s.billboardRepo.UpdateSlotPricing(ctx, billboardID, newPricing); err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			return nil, ErrBillboardNotFound
		}
		s.logger.Error("UpdatePricing: repository error for billboard id=%d: %v", billboardID, err)
		return nil, fmt.Errorf("%w: UpdatePricing - repository error: %v", ErrInternal, err)
	}

	billboard.SlotPricing = newPricing

	s.logger.Info("UpdatePricing: successfully updated billboard id=%d", billboardID)
	return s.toResponse(billboard), nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Billboard, error) {
	billboard, err := s.billboardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			s.logger.Warn("%s: billboard id=%d not found", op, id)
			return nil, ErrBillboardNotFound
		}
		s.logger.Error("%s: repository error for billboard id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return billboard, nil
}

func (s *Service) toResponse(b *domain.Billboard) *models.PricingResponse {
	effective := func(slot domain.SlotName) *float64 {
		v := s.policy.ResolveSlotPrice(b, slot)
		return &v
	}

	return &models.PricingResponse{
		BillboardID: b.ID,
		Type:        string(b.Type),
		Price:       b.Price,
		SlotPricing: models.SlotPrices{
			Morning:   b.SlotPricing.Morning,
			Afternoon: b.SlotPricing.Afternoon,
			Evening:   b.SlotPricing.Evening,
			Night:     b.SlotPricing.Night,
		},
		Effective: models.SlotPrices{
			Morning:   effective(domain.SlotMorning),
			Afternoon: effective(domain.SlotAfternoon),
			Evening:   effective(domain.SlotEvening),
			Night:     effective(domain.SlotNight),
		},
		IsComplete: b.SlotPricing.IsComplete(),
	}
}

// validatePricing заданные цены должны быть положительными
func validatePricing(p domain.SlotPricing) error {
	for _, slot := range domain.AllSlots {
		if v := p.For(slot); v != nil && *v <= 0 {
			return fmt.Errorf("%w: %s price must be positive", ErrInvalidInput, slot)
		}
	}
	return nil
}
