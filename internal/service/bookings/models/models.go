package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64   `json:"-"`
	IsAdmin            bool    `json:"-"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID int64
	IsAdmin     bool
	UserID      int64
	Status      *string
}

// ListBookingsRequest административный список бронирований
type ListBookingsRequest struct {
	BillboardID *int64
	UserID      *int64
	Status      *string
	Limit       int
	Offset      int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		BillboardID: r.BillboardID,
		UserID:      r.UserID,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultAdminPageSize
	}
	if filter.Limit > domain.MaxAdminPageSize {
		filter.Limit = domain.MaxAdminPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	BillboardID   int64   `json:"billboardId"`
	UserID        int64   `json:"userId"`
	StartDate     string  `json:"startDate"` // "2024-06-01"
	EndDate       string  `json:"endDate"`
	StartTime     string  `json:"startTime"` // "08:00"
	EndTime       string  `json:"endTime"`
	ContentType   string  `json:"contentType"`
	VideoDuration int     `json:"videoDuration"`
	Reputation    int     `json:"reputation"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`

	RefundAmount       *float64 `json:"refundAmount,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Для старых записей без длительности и повторов подставляются значения по умолчанию.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		BillboardID:        b.BillboardID,
		UserID:             b.UserID,
		StartDate:          b.StartDate.Format(domain.DateFormat),
		EndDate:            b.EndDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		ContentType:        string(b.ContentType),
		VideoDuration:      b.EffectiveVideoDuration(),
		Reputation:         b.EffectiveReputation(),
		Price:              b.Price,
		Status:             string(b.Status),
		RefundAmount:       b.RefundAmount,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
