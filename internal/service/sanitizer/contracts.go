package sanitizer

import (
	"context"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	UpdatePrice(ctx context.Context, id int64, newPrice float64) (bool, error)
}

// BillboardRepository интерфейс репозитория щитов
type BillboardRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Billboard, error)
}

// Metrics счётчик исходов исправления цены
type Metrics interface {
	RecordHeal(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
