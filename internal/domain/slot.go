package domain

// SlotName один из четырёх фиксированных шестичасовых слотов суток
type SlotName string

const (
	SlotMorning   SlotName = "morning"   // [06:00, 12:00)
	SlotAfternoon SlotName = "afternoon" // [12:00, 18:00)
	SlotEvening   SlotName = "evening"   // [18:00, 24:00)
	SlotNight     SlotName = "night"     // [00:00, 06:00)
)

// AllSlots слоты в порядке следования в сутках (начиная с утра)
var AllSlots = []SlotName{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// IsValid true для известного имени слота
func (s SlotName) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotEvening, SlotNight:
		return true
	}
	return false
}

// SlotUsage потреблённые секунды эфира по слотам за один день
type SlotUsage struct {
	Morning   int64 `json:"morning"`
	Afternoon int64 `json:"afternoon"`
	Evening   int64 `json:"evening"`
	Night     int64 `json:"night"`
}

// Add добавляет секунды к слоту
func (u *SlotUsage) Add(slot SlotName, seconds int64) {
	switch slot {
	case SlotMorning:
		u.Morning += seconds
	case SlotAfternoon:
		u.Afternoon += seconds
	case SlotEvening:
		u.Evening += seconds
	case SlotNight:
		u.Night += seconds
	}
}

// Get возвращает потребление слота
func (u SlotUsage) Get(slot SlotName) int64 {
	switch slot {
	case SlotMorning:
		return u.Morning
	case SlotAfternoon:
		return u.Afternoon
	case SlotEvening:
		return u.Evening
	case SlotNight:
		return u.Night
	}
	return 0
}

// Remaining оставшаяся ёмкость каждого слота, не меньше нуля
func (u SlotUsage) Remaining(capacity int64) SlotUsage {
	rest := func(used int64) int64 {
		if used >= capacity {
			return 0
		}
		return capacity - used
	}
	return SlotUsage{
		Morning:   rest(u.Morning),
		Afternoon: rest(u.Afternoon),
		Evening:   rest(u.Evening),
		Night:     rest(u.Night),
	}
}

// IsSaturated true, если потребление слота достигло ёмкости
func (u SlotUsage) IsSaturated(slot SlotName, capacity int64) bool {
	return u.Get(slot) >= capacity
}
