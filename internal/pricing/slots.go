package pricing

import (
	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// ClassifySlot относит час начала показа к одному из четырёх слотов.
// Часы вне 0..23 приводятся по модулю 24.
func ClassifySlot(hour int) domain.SlotName {
	hour %= 24
	if hour < 0 {
		hour += 24
	}

	switch {
	case hour >= 6 && hour < 12:
		return domain.SlotMorning
	case hour >= 12 && hour < 18:
		return domain.SlotAfternoon
	case hour >= 18:
		return domain.SlotEvening
	default:
		return domain.SlotNight
	}
}

// ClassifyStartTime разбирает "HH:MM" и возвращает слот
func ClassifyStartTime(startTime types.TimeString) (domain.SlotName, error) {
	hour, err := startTime.Hour()
	if err != nil {
		return "", err
	}
	return ClassifySlot(hour), nil
}

// ResolveSlotPrice цена слота щита: цена слота, затем плоская цена, затем запасная константа
func (p Policy) ResolveSlotPrice(billboard *domain.Billboard, slot domain.SlotName) float64 {
	p = p.withDefaults()

	if billboard == nil {
		return p.FallbackSlotPrice
	}
	if price := billboard.SlotPricing.For(slot); price != nil && *price > 0 {
		return *price
	}
	if billboard.Price > 0 {
		return billboard.Price
	}
	return p.FallbackSlotPrice
}

// ResolveSlotPrice то же, что Policy.ResolveSlotPrice с политикой по умолчанию
func ResolveSlotPrice(billboard *domain.Billboard, slot domain.SlotName) float64 {
	return DefaultPolicy().ResolveSlotPrice(billboard, slot)
}
