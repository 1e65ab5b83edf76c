package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// Reason почему санитизация изменила или не изменила цену
type Reason string

const (
	ReasonBelowThreshold   Reason = "below_threshold"
	ReasonBillboardMissing Reason = "billboard_missing"
	ReasonInvalidStartTime Reason = "invalid_start_time"
	ReasonNotInflated      Reason = "not_inflated"
	ReasonCorrected        Reason = "corrected"
)

// Result результат санитизации цены
type Result struct {
	Price     float64
	Corrected bool
	Reason    Reason
}

// IsSuspicious true, если цена выше порога подозрительности
func (p Policy) IsSuspicious(price float64) bool {
	return price > p.withDefaults().SuspiciousPriceThreshold
}

// InclusiveDays число дней периода включительно: round(|end-start| / 24h) + 1
func InclusiveDays(start, end time.Time) int {
	from := calendarDate(start, time.UTC)
	to := calendarDate(end, time.UTC)
	diff := math.Abs(to.Sub(from).Hours() / 24)
	return int(math.Round(diff)) + 1
}

// BookingPrice каноническая цена бронирования по текущей формуле.
// Ошибка только при некорректном startTime.
func (p Policy) BookingPrice(b *domain.Booking, billboard *domain.Billboard) (float64, error) {
	slot, err := ClassifyStartTime(b.StartTime)
	if err != nil {
		return 0, err
	}
	slotPrice := p.ResolveSlotPrice(billboard, slot)
	days := InclusiveDays(b.StartDate, b.EndDate)
	return CalculatePrice(slotPrice, b.EffectiveVideoDuration(), b.EffectiveReputation(), days), nil
}

// Sanitize пересчитывает подозрительно высокую цену. Цена только снижается.
// Бронирование не изменяется, новая цена возвращается в Result.
func (p Policy) Sanitize(b *domain.Booking, billboard *domain.Billboard) Result {
	unchanged := func(reason Reason) Result {
		return Result{Price: b.Price, Reason: reason}
	}

	if !p.IsSuspicious(b.Price) {
		return unchanged(ReasonBelowThreshold)
	}
	if billboard == nil {
		return unchanged(ReasonBillboardMissing)
	}

	correctPrice, err := p.BookingPrice(b, billboard)
	if err != nil {
		return unchanged(ReasonInvalidStartTime)
	}
	if correctPrice >= b.Price {
		return unchanged(ReasonNotInflated)
	}

	return Result{Price: correctPrice, Corrected: true, Reason: ReasonCorrected}
}

// Sanitize то же, что Policy.Sanitize с политикой по умолчанию
func Sanitize(b *domain.Booking, billboard *domain.Billboard) Result {
	return DefaultPolicy().Sanitize(b, billboard)
}
