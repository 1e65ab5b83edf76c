package models

import (
	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// SlotPrices цены по слотам
type SlotPrices struct {
	Morning   *float64 `json:"morning"`
	Afternoon *float64 `json:"afternoon"`
	Evening   *float64 `json:"evening"`
	Night     *float64 `json:"night"`
}

// UpdatePricingRequest запрос владельца на изменение цен слотов
type UpdatePricingRequest struct {
	UserID int64 `json:"-"`
	SlotPrices
}

// ToDomain конвертирует в domain.SlotPricing
func (r *UpdatePricingRequest) ToDomain() domain.SlotPricing {
	return domain.SlotPricing{
		Morning:   r.Morning,
		Afternoon: r.Afternoon,
		Evening:   r.Evening,
		Night:     r.Night,
	}
}

// PricingResponse цены щита: заданные владельцем и фактически применяемые
type PricingResponse struct {
	BillboardID int64      `json:"billboardId"`
	Type        string     `json:"type"`
	Price       float64    `json:"price"`
	SlotPricing SlotPrices `json:"slotPricing"`
	Effective   SlotPrices `json:"effective"` // с учётом отката на плоскую цену
	IsComplete  bool       `json:"isComplete"`
}
