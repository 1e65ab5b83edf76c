package domain

import "time"

// BillboardType тип рекламного щита
type BillboardType string

const (
	BillboardDigital BillboardType = "digital"
	BillboardStatic  BillboardType = "static"
)

// SlotPricing цены за полное заполнение слота в течение одного дня.
// nil означает, что цена для слота не задана.
type SlotPricing struct {
	Morning   *float64
	Afternoon *float64
	Evening   *float64
	Night     *float64
}

// For возвращает цену для слота (nil, если не задана)
func (p SlotPricing) For(slot SlotName) *float64 {
	switch slot {
	case SlotMorning:
		return p.Morning
	case SlotAfternoon:
		return p.Afternoon
	case SlotEvening:
		return p.Evening
	case SlotNight:
		return p.Night
	}
	return nil
}

// IsComplete true, если заданы все четыре слота
func (p SlotPricing) IsComplete() bool {
	return p.Morning != nil && p.Afternoon != nil && p.Evening != nil && p.Night != nil
}

// Billboard рекламный щит
type Billboard struct {
	ID          int64
	OwnerID     int64
	Title       string
	Location    string
	Type        BillboardType
	Price       float64 // плоская дневная цена, используется как запасная
	SlotPricing SlotPricing

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDigital true для цифровых щитов
func (b *Billboard) IsDigital() bool {
	return b.Type == BillboardDigital
}
