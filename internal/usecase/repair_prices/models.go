package repair_prices

import "github.com/m04kA/SMC-BillboardService/internal/pricing"

// DefaultBatchSize размер страницы по умолчанию
const DefaultBatchSize = 500

// Request параметры запуска
type Request struct {
	BatchSize int   // 0 = DefaultBatchSize
	Lease     Lease // nil = без блокировки; продлевается перед каждой следующей страницей
}

// Summary итоги прохода
type Summary struct {
	Scanned   int
	Corrected int
	ByReason  map[pricing.Reason]int
	// Saved суммарное снижение цен
	Saved  float64
	LastID int64
}
