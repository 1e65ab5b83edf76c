package sanitizer

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
)

// Исходы, которые возникают только при работе с хранилищем
const (
	ReasonLookupFailed  pricing.Reason = "billboard_lookup_failed"
	ReasonPersistFailed pricing.Reason = "persist_failed"
	ReasonPanic         pricing.Reason = "panic"
)

// Service исправляет завышенные цены бронирований при чтении.
// Никогда не возвращает ошибку: в худшем случае отдаёт бронирование как есть.
type Service struct {
	bookingRepo   BookingRepository
	billboardRepo BillboardRepository
	policy        pricing.Policy
	metrics       Metrics
	logger        Logger
}

// NewService создает сервис исправления цен. metrics может быть nil.
func NewService(
	bookingRepo BookingRepository,
	billboardRepo BillboardRepository,
	policy pricing.Policy,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		billboardRepo: billboardRepo,
		policy:        policy,
		metrics:       metrics,
		logger:        logger,
	}
}

// Heal возвращает бронирование с исправленной ценой (или исходное)
func (s *Service) Heal(ctx context.Context, booking *domain.Booking) *domain.Booking {
	healed, _ := s.HealWithResult(ctx, booking)
	return healed
}

// HealAll применяет Heal к списку; щиты запрашиваются один раз на вызов
func (s *Service) HealAll(ctx context.Context, bookings []*domain.Booking) []*domain.Booking {
	billboards := make(map[int64]*domain.Billboard)
	out := make([]*domain.Booking, len(bookings))
	for i, b := range bookings {
		out[i], _ = s.heal(ctx, b, billboards)
	}
	return out
}

// HealWithResult то же, что Heal, но дополнительно возвращает исход
func (s *Service) HealWithResult(ctx context.Context, booking *domain.Booking) (*domain.Booking, pricing.Result) {
	return s.heal(ctx, booking, nil)
}

func (s *Service) heal(ctx context.Context, booking *domain.Booking, billboards map[int64]*domain.Billboard) (healed *domain.Booking, res pricing.Result) {
	if booking == nil {
		return nil, pricing.Result{Reason: pricing.ReasonBelowThreshold}
	}

	healed = booking
	res = pricing.Result{Price: booking.Price, Reason: pricing.ReasonBelowThreshold}

	// 1. Ниже порога: без обращения к хранилищу
	if !s.policy.IsSuspicious(booking.Price) {
		return healed, res
	}

	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("Heal: panic while healing booking id=%d: %v", booking.ID, p)
			healed, res = booking, pricing.Result{Price: booking.Price, Reason: ReasonPanic}
		}
		s.record(res.Reason)
	}()

	// 2. Загружаем щит
	billboard, err := s.billboard(ctx, booking.BillboardID, billboards)
	if err != nil && !errors.Is(err, billboardRepo.ErrBillboardNotFound) {
		s.logger.Error("Heal: failed to get billboard id=%d for booking id=%d: %v", booking.BillboardID, booking.ID, err)
		return booking, pricing.Result{Price: booking.Price, Reason: ReasonLookupFailed}
	}

	// 3. Чистый пересчёт
	res = s.policy.Sanitize(booking, billboard)
	switch res.Reason {
	case pricing.ReasonBillboardMissing:
		s.logger.Warn("Heal: billboard id=%d not found, booking id=%d left unchanged", booking.BillboardID, booking.ID)
		return booking, res
	case pricing.ReasonInvalidStartTime:
		s.logger.Warn("Heal: booking id=%d has malformed startTime=%q, left unchanged", booking.ID, booking.StartTime)
		return booking, res
	}
	if !res.Corrected {
		return booking, res
	}

	// 4. Сохраняем новую цену
	updated, err := s.bookingRepo.UpdatePrice(ctx, booking.ID, res.Price)
	if err != nil {
		s.logger.Error("Heal: failed to persist price for booking id=%d: %v", booking.ID, err)
		return booking, pricing.Result{Price: booking.Price, Reason: ReasonPersistFailed}
	}
	if !updated {
		s.logger.Info("Heal: booking id=%d already healed concurrently", booking.ID)
	}

	s.logger.Info("Heal: booking id=%d price corrected %.2f -> %.2f", booking.ID, booking.Price, res.Price)

	copied := *booking
	copied.Price = res.Price
	return &copied, res
}

func (s *Service) billboard(ctx context.Context, id int64, cache map[int64]*domain.Billboard) (*domain.Billboard, error) {
	if cache != nil {
		if b, ok := cache[id]; ok {
			return b, nil
		}
	}

	b, err := s.billboardRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) && cache != nil {
			cache[id] = nil
		}
		return nil, err
	}

	if cache != nil {
		cache[id] = b
	}
	return b, nil
}

func (s *Service) record(reason pricing.Reason) {
	if s.metrics != nil {
		s.metrics.RecordHeal(string(reason))
	}
}
