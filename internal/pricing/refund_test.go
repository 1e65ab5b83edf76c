package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefund(t *testing.T) {
	start := date(2024, 6, 1)
	end := date(2024, 6, 4)

	tests := []struct {
		name   string
		cancel int
		want   float64
	}{
		{"before start", -2, 1000},
		{"on first day", 0, 750},
		{"in the middle", 1, 500},
		{"on last day", 3, 0},
		{"after end", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Refund(1000, start, end, start.AddDate(0, 0, tt.cancel))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefund_RoundsToCents(t *testing.T) {
	// 1000 * 2/3
	assert.Equal(t, 666.67, Refund(1000, date(2024, 6, 1), date(2024, 6, 3), date(2024, 6, 1)))
	assert.Zero(t, Refund(0, date(2024, 6, 1), date(2024, 6, 3), date(2024, 5, 1)))
}
