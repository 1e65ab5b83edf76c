package domain

// Значения по умолчанию для бронирований без явных параметров показа
const (
	DefaultVideoDuration = 15 // секунды
	DefaultReputation    = 40 // повторов в день
)

// Диапазон повторов, который предлагает интерфейс оценки цены
const (
	ReputationStep  = 40
	MinReputation   = 40
	MaxReputation   = 400
	MinEstimateDays = 1
	MaxEstimateDays = 30
)

// Business validation constants
const (
	MaxVideoDuration            = 3600
	MaxCancellationReasonLength = 500
	MaxAdminPageSize            = 200
	DefaultAdminPageSize        = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, которые занимают эфир при подсчёте доступности
var OccupyingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusPending,
	StatusPaid,
	StatusActive,
}
