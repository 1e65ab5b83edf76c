package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	billboardRepo BillboardRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	opts          Options
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	billboardRepo BillboardRepository,
	txManager TransactionManager,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.PriceMode == "" {
		opts.PriceMode = PriceModeTrust
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		billboardRepo: billboardRepo,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		opts:          opts,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка ёмкости слота (если включена) и запись идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, billboard=%d, period=%s..%s, time=%s, price=%.2f",
		req.UserID, req.BillboardID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.StartTime, req.Price)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата начала не в прошлом
	if err := validateNotInPast(req.StartDate, uc.timeProvider.Now().In(uc.opts.Location)); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Получаем щит
	billboard, err := uc.billboardRepo.GetByID(ctx, req.BillboardID)
	if err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			uc.logger.Warn("CreateBooking: billboard id=%d not found", req.BillboardID)
			return nil, ErrBillboardNotFound
		}
		uc.logger.Error("CreateBooking: failed to get billboard id=%d: %v", req.BillboardID, err)
		return nil, fmt.Errorf("%w: failed to get billboard: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		BillboardID:   req.BillboardID,
		UserID:        req.UserID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		ContentType:   req.ContentType,
		VideoDuration: ptr.Ptr(ptr.ValueOr(req.VideoDuration, domain.DefaultVideoDuration)),
		Reputation:    ptr.Ptr(ptr.ValueOr(req.Reputation, domain.DefaultReputation)),
		Status:        domain.StatusPending,
	}

	// 4. Серверная цена по канонической формуле
	slot, err := pricing.ClassifyStartTime(booking.StartTime)
	if err != nil {
		// validateRequest уже проверил формат
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	serverPrice, err := uc.opts.Policy.BookingPrice(booking, billboard)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Политика цены клиента
	mismatch := math.Abs(req.Price-serverPrice) > priceTolerance
	switch uc.opts.PriceMode {
	case PriceModeEnforce:
		if mismatch {
			uc.logger.Warn("CreateBooking: price mismatch for billboard=%d: client=%.2f server=%.2f",
				req.BillboardID, req.Price, serverPrice)
			return nil, fmt.Errorf("%w: expected %.0f", ErrPriceMismatch, serverPrice)
		}
		booking.Price = req.Price
	case PriceModeRecompute:
		booking.Price = serverPrice
	default:
		if mismatch {
			uc.logger.Warn("CreateBooking: client price %.2f differs from server price %.2f (billboard=%d, user=%d)",
				req.Price, serverPrice, req.BillboardID, req.UserID)
		}
		booking.Price = req.Price
	}

	var result *domain.Booking

	// 6. Проверка ёмкости и запись
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if uc.opts.EnforceSlotCapacity {
			if err := uc.checkCapacity(txCtx, booking, slot); err != nil {
				return err
			}
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, slot=%s, price=%.2f", result.ID, slot, result.Price)

	return &Response{
		ID:            result.ID,
		BillboardID:   result.BillboardID,
		UserID:        result.UserID,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		ContentType:   string(result.ContentType),
		Slot:          slot,
		VideoDuration: result.EffectiveVideoDuration(),
		Reputation:    result.EffectiveReputation(),
		Price:         result.Price,
		ServerPrice:   serverPrice,
		PriceMismatch: mismatch,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// checkCapacity для каждого дня периода проверяет, что слот вместит новое бронирование.
// Пересекающиеся строки блокируются (FOR UPDATE) до конца транзакции.
func (uc *UseCase) checkCapacity(ctx context.Context, booking *domain.Booking, slot domain.SlotName) error {
	existing, err := uc.bookingRepo.GetOverlapping(ctx, booking.BillboardID, booking.StartDate, booking.EndDate, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	consumption := pricing.DailyConsumption(booking.EffectiveVideoDuration(), booking.EffectiveReputation())

	for _, day := range pricing.Days(booking.StartDate, booking.EndDate, uc.opts.Location) {
		usage := pricing.Aggregate(existing, day, uc.opts.Location).SlotUsage.Get(slot)
		if usage+consumption > pricing.SlotDurationSeconds {
			uc.logger.Warn("CreateBooking: slot %s saturated on %s: used=%d, requested=%d",
				slot, day.Format(domain.DateFormat), usage, consumption)
			return fmt.Errorf("%w: %s on %s has %d seconds left", ErrSlotSaturated, slot,
				day.Format(domain.DateFormat), max(0, pricing.SlotDurationSeconds-usage))
		}
	}

	return nil
}
