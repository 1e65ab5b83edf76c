package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat возвращается, если строка не в формате HH:MM
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, если результат арифметики выходит за пределы суток
	ErrOutOfRange = errors.New("time string out of range")
)

const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM" без даты
type TimeString string

// NewTimeString создаёт TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" (допускается "HH:MM:SS" из БД)
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(strings.TrimSpace(s))
	minutes, err := t.minutes()
	if err != nil {
		return "", err
	}
	return fromMinutes(minutes), nil
}

// IsZero true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час (0..23)
func (t TimeString) Hour() (int, error) {
	minutes, err := t.minutes()
	if err != nil {
		return 0, err
	}
	return minutes / 60, nil
}

// AddMinutes прибавляет минуты; переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.minutes()
	if err != nil {
		return "", err
	}
	total := minutes + n
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s %+d min", ErrOutOfRange, t, n)
	}
	return fromMinutes(total), nil
}

// IsBefore true, если t строго раньше other. Некорректное время ни с чем не сравнимо.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	return errA == nil && errB == nil && a > b
}

// Scan реализует sql.Scanner (PostgreSQL TIME приходит как "15:04:05")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// scanString нормализует корректное значение, некорректное сохраняет как есть:
// исторические строки должны читаться, проверка формата делается при использовании
func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		*t = TimeString(s)
		return nil
	}
	*t = parsed
	return nil
}

// minutes возвращает количество минут от полуночи
func (t TimeString) minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, ErrInvalidFormat
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, ErrInvalidFormat
	}

	if len(parts) == 3 {
		// секунды из БД отбрасываем, но проверяем что это число
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, ErrInvalidFormat
		}
	}

	return hour*60 + minute, nil
}

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
