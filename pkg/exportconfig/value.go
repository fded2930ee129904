package exportconfig

import (
	"math"
	"strconv"
	"time"
)

// Sample values arrive from the SQL layer as the database/sql scan set:
// int64, float64, string, bool, time.Time, or nil. The helpers below classify
// that runtime shape; they never panic on anything else.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// isDateLike reports whether a sample value behaves as a date.
func isDateLike(v interface{}) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	case string:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, t); err == nil {
				return true
			}
		}
	}
	return false
}

// IsNumericLike reports whether a sample value behaves as a number: an actual
// numeric type or a numeric string. Arrays, objects, bools, and nil do not
// qualify.
func IsNumericLike(v interface{}) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(t, 64)
		return err == nil
	}
	return false
}

// isIntegral reports whether a numeric value carries no fractional part.
func isIntegral(v interface{}) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(t) == math.Trunc(float64(t))
	case float64:
		return t == math.Trunc(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return err == nil && f == math.Trunc(f)
	}
	return false
}
