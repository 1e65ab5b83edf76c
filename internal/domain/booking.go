package domain

import (
	"time"

	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"

	// Статусы платёжного шлюза, хранятся наравне с жизненным циклом
	StatusPaid   BookingStatus = "paid"
	StatusActive BookingStatus = "active"
)

// IsValid true для известного статуса
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusPaid, StatusActive:
		return true
	}
	return false
}

// ContentType тип рекламного материала
type ContentType string

const (
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
	ContentText  ContentType = "text"
)

// IsValid true для известного типа контента
func (c ContentType) IsValid() bool {
	return c == ContentImage || c == ContentVideo || c == ContentText
}

// Booking бронирование эфирного времени на щите.
// StartDate и EndDate включительно, только дата.
type Booking struct {
	ID          int64
	BillboardID int64
	UserID      int64

	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	ContentType   ContentType
	VideoDuration *int // секунды, nil или <= 0 = DefaultVideoDuration
	Reputation    *int // повторов в день, nil или <= 0 = DefaultReputation

	Price  float64 // за весь период
	Status BookingStatus

	RefundAmount       *float64
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveVideoDuration длительность ролика с учётом значения по умолчанию.
// Старые записи с нулём считаются записями без длительности.
func (b *Booking) EffectiveVideoDuration() int {
	if b.VideoDuration == nil || *b.VideoDuration <= 0 {
		return DefaultVideoDuration
	}
	return *b.VideoDuration
}

// EffectiveReputation число повторов с учётом значения по умолчанию
func (b *Booking) EffectiveReputation() int {
	if b.Reputation == nil || *b.Reputation <= 0 {
		return DefaultReputation
	}
	return *b.Reputation
}

// IsOccupying true, если бронирование занимает эфир
func (b *Booking) IsOccupying() bool {
	for _, s := range OccupyingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusPaid
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsFinal true для статусов, из которых нет переходов
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// BookingsFilter фильтр для административного списка бронирований
type BookingsFilter struct {
	BillboardID *int64
	UserID      *int64
	Status      *BookingStatus
	Limit       int
	Offset      int
}

// allowedTransitions допустимые переходы статусов для администратора
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusConfirmed, StatusPaid, StatusCancelled},
	StatusPaid:       {StatusConfirmed, StatusActive, StatusCancelled},
	StatusConfirmed:  {StatusActive, StatusInProgress, StatusCancelled},
	StatusActive:     {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
}

// CanTransitionTo проверяет, допустим ли переход в статус next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range allowedTransitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}
