package pricing

// Значения по умолчанию для констант ценообразования
const (
	DefaultFallbackSlotPrice        = 12000.0
	DefaultSuspiciousPriceThreshold = 100000.0
)

// Policy настраиваемые константы ценообразования
type Policy struct {
	// FallbackSlotPrice цена слота, если у щита не задана ни цена слота, ни плоская цена
	FallbackSlotPrice float64
	// SuspiciousPriceThreshold цены выше порога считаются подозрительными и пересчитываются
	SuspiciousPriceThreshold float64
}

// DefaultPolicy политика со значениями по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		FallbackSlotPrice:        DefaultFallbackSlotPrice,
		SuspiciousPriceThreshold: DefaultSuspiciousPriceThreshold,
	}
}

// withDefaults подставляет значения по умолчанию вместо нулевых
func (p Policy) withDefaults() Policy {
	if p.FallbackSlotPrice <= 0 {
		p.FallbackSlotPrice = DefaultFallbackSlotPrice
	}
	if p.SuspiciousPriceThreshold <= 0 {
		p.SuspiciousPriceThreshold = DefaultSuspiciousPriceThreshold
	}
	return p
}

// Threshold действующий порог подозрительной цены
func (p Policy) Threshold() float64 {
	return p.withDefaults().SuspiciousPriceThreshold
}
