package pricing

import (
	"math"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
)

// SlotDurationSeconds ёмкость слота: 6 часов эфира в секундах.
// Цена слота покупает столько секунд суммарного показа в день.
const SlotDurationSeconds = 6 * 60 * 60

// priceFor общая формула: ставка за единицу потребления * единицы * дни
func priceFor(ratePerUnit, unitsConsumed, days float64) float64 {
	return ratePerUnit * unitsConsumed * days
}

// CalculatePrice цена бронирования пропорционально потреблённому эфиру.
// Округляется до целых один раз, после умножения на дни, поэтому линейность
// по дням точная только при целой дневной цене. Превышение ёмкости слота не ограничивается.
func CalculatePrice(slotPrice float64, videoDurationSeconds, repetitions, days int) float64 {
	costPerSecond := slotPrice / SlotDurationSeconds
	dailyConsumedSeconds := float64(videoDurationSeconds) * float64(repetitions)
	return math.Round(priceFor(costPerSecond, dailyConsumedSeconds, float64(days)))
}

// DailyConsumption потребление эфира в день: длительность * повторы
func DailyConsumption(videoDurationSeconds, repetitions int) int64 {
	return int64(videoDurationSeconds) * int64(repetitions)
}

// BasePriceFor базовая дневная цена для оценки при 40 повторах ролика assumedDuration секунд
func BasePriceFor(slotPrice float64, assumedDuration int) float64 {
	return slotPrice / SlotDurationSeconds * float64(assumedDuration) * domain.ReputationStep
}

// SnapReputation приводит число повторов к ближайшему кратному 40 в диапазоне [40, 400]
func SnapReputation(reputation int) int {
	snapped := int(math.Round(float64(reputation)/domain.ReputationStep)) * domain.ReputationStep
	return clamp(snapped, domain.MinReputation, domain.MaxReputation)
}

// ClampDays приводит число дней к диапазону [1, 30]
func ClampDays(days int) int {
	return clamp(days, domain.MinEstimateDays, domain.MaxEstimateDays)
}

// Estimate интерактивная оценка цены: basePrice * дни * (повторы / 40).
// Результат не округляется.
func Estimate(basePrice float64, reputation, days int) float64 {
	reputationFactor := float64(SnapReputation(reputation)) / domain.ReputationStep
	return priceFor(basePrice, reputationFactor, float64(ClampDays(days)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
