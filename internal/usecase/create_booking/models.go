package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// Режимы обработки цены клиента
const (
	PriceModeTrust     = "trust"
	PriceModeEnforce   = "enforce"
	PriceModeRecompute = "recompute"
)

// допустимое расхождение цены клиента и сервера
const priceTolerance = 1.0

// Options настройки создания бронирования
type Options struct {
	PriceMode           string
	EnforceSlotCapacity bool
	Policy              pricing.Policy
	Location            *time.Location
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64
	BillboardID   int64
	StartDate     time.Time // без времени
	EndDate       time.Time // включительно
	StartTime     types.TimeString
	EndTime       types.TimeString
	ContentType   domain.ContentType
	VideoDuration *int    // nil = 15 секунд
	Reputation    *int    // nil = 40 повторов
	Price         float64 // цена, посчитанная клиентом
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BillboardID   int64
	UserID        int64
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ContentType   string
	Slot          domain.SlotName
	VideoDuration int
	Reputation    int
	Price         float64 // сохранённая цена
	ServerPrice   float64 // цена по формуле сервера
	PriceMismatch bool
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
