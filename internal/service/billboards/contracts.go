package billboards

import (
	"context"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// BillboardRepository интерфейс репозитория щитов
type BillboardRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Billboard, error)
	UpdateSlotPricing(ctx context.Context, id int64, pricing domain.SlotPricing) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
