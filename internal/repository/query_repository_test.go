package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "hello", normalizeValue([]byte("hello")))
	assert.Equal(t, int64(5), normalizeValue(int64(5)))
	assert.Equal(t, 1.5, normalizeValue(1.5))
	assert.Nil(t, normalizeValue(nil))
}

func TestTotalOf(t *testing.T) {
	t.Run("ReservedKeyWins", func(t *testing.T) {
		rows := []map[string]interface{}{
			{"symbol": "TCS", "total_count": int64(250)},
			{"symbol": "INFY", "total_count": int64(250)},
		}
		assert.Equal(t, 250, totalOf(rows))
	})

	t.Run("NumericStringTotal", func(t *testing.T) {
		rows := []map[string]interface{}{{"total_count": "42"}}
		assert.Equal(t, 42, totalOf(rows))
	})

	t.Run("FallsBackToRowCount", func(t *testing.T) {
		rows := []map[string]interface{}{{"symbol": "TCS"}, {"symbol": "INFY"}}
		assert.Equal(t, 2, totalOf(rows))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, totalOf(nil))
	})
}
