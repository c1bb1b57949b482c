package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFormat возвращается при некорректном формате времени (ожидается HH:MM)
var ErrInvalidFormat = errors.New("invalid time string format")

// timeLayout формат времени в рамках дня
const timeLayout = "15:04"

// TimeString время в рамках дня в формате HH:MM (без даты и таймзоны)
// Хранится и передаётся как строка, сравнивается как минуты от полуночи
type TimeString string

// NewTimeString создает TimeString из time.Time (минуты усекаются до HH:MM)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку HH:MM и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return TimeString(s), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается (рабочий день не пересекает сутки)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidFormat, string(t), minutes)
	}
	return NewTimeStringFromMinutes(total), nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return string(t) == ""
}

// Validate проверяет, что значение имеет корректный формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, граничащие концами (aEnd == bStart), НЕ считаются пересекающимися
func Overlaps(aStart, aEnd, bStart, bEnd TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// Scan реализует sql.Scanner
// Postgres возвращает TIME как "HH:MM:SS" - усекаем до HH:MM
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateToHHMM(v)
		return nil
	case []byte:
		*t = truncateToHHMM(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidFormat, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

func truncateToHHMM(s string) TimeString {
	if len(s) > 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
