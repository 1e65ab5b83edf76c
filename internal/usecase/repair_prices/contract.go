package repair_prices

import (
	"context"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListSuspicious страница бронирований с ценой выше threshold и id > afterID по возрастанию id
	ListSuspicious(ctx context.Context, threshold float64, afterID int64, limit int) ([]*domain.Booking, error)
}

// Healer исправляет цену одного бронирования тем же путём, что и чтение
type Healer interface {
	HealWithResult(ctx context.Context, booking *domain.Booking) (*domain.Booking, pricing.Result)
}

// Lease блокировка запуска, которую нужно продлевать во время прохода
type Lease interface {
	Extend(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
