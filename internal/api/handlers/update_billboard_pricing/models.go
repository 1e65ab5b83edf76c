package update_billboard_pricing

import (
	"github.com/m04kA/SMC-BillboardService/internal/service/billboards/models"
)

// UpdatePricingRequest HTTP request model
type UpdatePricingRequest struct {
	SlotPricing models.SlotPrices `json:"slotPricing"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePricingRequest) ToServiceRequest(userID int64) *models.UpdatePricingRequest {
	return &models.UpdatePricingRequest{
		UserID:     userID,
		SlotPrices: r.SlotPricing,
	}
}
