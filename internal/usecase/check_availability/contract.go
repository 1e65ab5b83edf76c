package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetOverlapping получает бронирования щита в статусах statuses, пересекающиеся с периодом
	GetOverlapping(ctx context.Context, billboardID int64, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error)
}

// BillboardRepository интерфейс репозитория щитов
type BillboardRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Billboard, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
