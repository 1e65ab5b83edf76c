package update_billboard_pricing

import (
	"context"

	"github.com/m04kA/SMC-BillboardService/internal/service/billboards/models"
)

type BillboardService interface {
	UpdatePricing(ctx context.Context, billboardID int64, req *models.UpdatePricingRequest) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
