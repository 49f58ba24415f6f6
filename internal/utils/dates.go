package utils

import (
	"strings"
	"time"
)

// ParseDateLoose accepts the emissao representations seen in stored ticket
// documents: native time values or date strings in a handful of layouts.
// Unparseable values return nil; callers decide whether that is an error.
func ParseDateLoose(v any) *time.Time {
	switch d := v.(type) {
	case time.Time:
		return &d
	case *time.Time:
		return d
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return nil
		}
		layouts := []string{
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02",
			"02/01/2006",
			"02/01/2006 15:04:05",
		}
		for _, l := range layouts {
			if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
				return &t
			}
		}
	}
	return nil
}
