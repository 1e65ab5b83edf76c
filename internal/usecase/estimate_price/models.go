package estimate_price

import (
	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// Request параметры оценки цены. Пустые указатели заменяются значениями по умолчанию.
type Request struct {
	BillboardID   int64
	StartTime     types.TimeString
	VideoDuration *int // nil = 15 секунд
	Reputation    *int // nil = 40 повторов
	Days          *int // nil = 1 день
}

// Response оценка цены для выбранного слота
type Response struct {
	BillboardID    int64
	Slot           domain.SlotName
	SlotPrice      float64 // цена полного слота за день
	BasePrice      float64 // цена за день при 40 повторах
	VideoDuration  int
	Reputation     int     // приведён к шагу 40 в диапазоне [40, 400]
	Days           int     // приведены к диапазону [1, 30]
	EstimatedPrice float64 // оценка без округления
	Price          float64 // каноническая цена, как при создании бронирования
}
