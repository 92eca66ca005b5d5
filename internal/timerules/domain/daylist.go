package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// DayList stores lowercase weekday names as comma-joined text. Empty means
// the rule applies on every day.
type DayList []string

func (d DayList) Value() (driver.Value, error) {
	if len(d) == 0 {
		return "", nil
	}
	return strings.Join(d, ","), nil
}

func (d *DayList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case string:
		*d = splitDays(v)
		return nil
	case []byte:
		*d = splitDays(string(v))
		return nil
	default:
		return fmt.Errorf("unsupported day list type %T", value)
	}
}

func (d DayList) Contains(day string) bool {
	for _, candidate := range d {
		if candidate == day {
			return true
		}
	}
	return false
}

func splitDays(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	days := make([]string, 0, len(parts))
	for _, part := range parts {
		day := strings.ToLower(strings.TrimSpace(part))
		if day != "" {
			days = append(days, day)
		}
	}
	return days
}
