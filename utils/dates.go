package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date (2024-07-01) or a full RFC 3339
// timestamp, of which only the date part is kept.
func ParseDate(raw string) (datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(DateLayout, raw, time.UTC); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}

// ParseTimestamp accepts RFC 3339 or "YYYY-MM-DD HH:MM:SS" (read as UTC).
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

func Today() datatypes.Date {
	now := time.Now()
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// IsISODate is registered with the binding validator as "isodate".
func IsISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// IsTimestamp is registered with the binding validator as "timestamp".
func IsTimestamp(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String())
	return err == nil
}
