package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	bookingRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями.
// Все пути чтения пропускают бронирования через Healer.
type Service struct {
	bookingRepo   BookingRepository
	billboardRepo BillboardRepository
	healer        Healer
	txManager     TransactionManager
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	billboardRepo BillboardRepository,
	healer Healer,
	txManager TransactionManager,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:   bookingRepo,
		billboardRepo: billboardRepo,
		healer:        healer,
		txManager:     txManager,
		timeProvider:  timeProvider,
		location:      location,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID.
// Доступ есть у автора бронирования, владельца щита и администратора.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkAccess(ctx, booking, userID, isAdmin); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	booking = s.healer.Heal(ctx, booking)

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d by requester=%d", req.UserID, req.RequesterID)

	if req.RequesterID != req.UserID && !req.IsAdmin {
		s.logger.Warn("GetUserBookings: user=%d cannot read history of user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	bookings = s.healer.HealAll(ctx, bookings)

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings административный список бронирований
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	s.logger.Info("ListBookings: fetching bookings limit=%d offset=%d", filter.Limit, filter.Offset)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	bookings = s.healer.HealAll(ctx, bookings)

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и считает сумму возврата
// за дни периода, которые ещё не начались
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Получаем бронирование (внутри транзакции строка блокируется)
		booking, err := s.getBooking(ctx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		// 2. Проверяем права
		if err := s.checkAccess(ctx, booking, req.UserID, req.IsAdmin); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return err
		}

		// 3. Проверяем статус
		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		result, err = s.cancel(ctx, "Cancel", booking, req.CancellationReason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d, refund=%.2f", bookingID, *result.RefundAmount)
	return models.FromDomainBooking(result), nil
}

// UpdateStatus административная смена статуса.
// Переход в cancelled идёт тем же путём, что и отмена, с расчётом возврата.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Booking
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
		if err != nil {
			return err
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d", booking.Status, newStatus, bookingID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if newStatus == domain.StatusCancelled {
			result, err = s.cancel(ctx, "UpdateStatus", booking, nil)
			return err
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// cancel считает возврат по исправленной цене и сохраняет отмену
func (s *Service) cancel(ctx context.Context, op string, booking *domain.Booking, reason *string) (*domain.Booking, error) {
	// Возврат не должен считаться от завышенной цены
	booking = s.healer.Heal(ctx, booking)

	now := s.timeProvider.Now().In(s.location)
	refund := pricing.Refund(booking.Price, booking.StartDate, booking.EndDate, now)

	if err := s.bookingRepo.Cancel(ctx, booking.ID, reason, refund); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error cancelling booking id=%d: %v", op, booking.ID, err)
		return nil, fmt.Errorf("%w: %s - cancel: %v", ErrInternal, op, err)
	}

	cancelled := *booking
	cancelled.Status = domain.StatusCancelled
	cancelled.RefundAmount = &refund
	cancelled.CancellationReason = reason
	cancelled.CancelledAt = &now
	return &cancelled, nil
}

// checkAccess пользователь автор бронирования, владелец щита или администратор
func (s *Service) checkAccess(ctx context.Context, booking *domain.Booking, userID int64, isAdmin bool) error {
	if isAdmin || booking.UserID == userID {
		return nil
	}

	billboard, err := s.billboardRepo.GetByID(ctx, booking.BillboardID)
	if err != nil {
		if errors.Is(err, billboardRepo.ErrBillboardNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkAccess: failed to get billboard id=%d: %v", booking.BillboardID, err)
		return fmt.Errorf("%w: checkAccess - failed to get billboard: %v", ErrInternal, err)
	}

	if billboard.OwnerID == userID {
		return nil
	}
	return ErrAccessDenied
}
