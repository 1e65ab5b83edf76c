package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
)

func suspiciousBooking(price float64) *domain.Booking {
	return &domain.Booking{
		ID:            7,
		BillboardID:   1,
		StartDate:     date(2024, 6, 1),
		EndDate:       date(2024, 6, 1),
		StartTime:     "08:00",
		EndTime:       "09:00",
		VideoDuration: ptr.Ptr(15),
		Reputation:    ptr.Ptr(40),
		Price:         price,
		Status:        domain.StatusConfirmed,
	}
}

func TestSanitize_Scenario(t *testing.T) {
	b := suspiciousBooking(500000)
	billboard := &domain.Billboard{ID: 1, Type: domain.BillboardStatic}

	res := Sanitize(b, billboard)
	assert.True(t, res.Corrected)
	assert.Equal(t, ReasonCorrected, res.Reason)
	assert.Equal(t, 333.0, res.Price)
	// бронирование не мутируется
	assert.Equal(t, 500000.0, b.Price)
}

func TestSanitize_BelowThresholdUnchanged(t *testing.T) {
	billboard := &domain.Billboard{ID: 1}
	for _, price := range []float64{0, 333, 99999.99, 100000} {
		b := suspiciousBooking(price)
		res := Sanitize(b, billboard)
		assert.False(t, res.Corrected)
		assert.Equal(t, ReasonBelowThreshold, res.Reason)
		assert.Equal(t, price, res.Price)
	}
}

func TestSanitize_NoOpReasons(t *testing.T) {
	b := suspiciousBooking(500000)
	assert.Equal(t, ReasonBillboardMissing, Sanitize(b, nil).Reason)

	bad := suspiciousBooking(500000)
	bad.StartTime = "morning"
	res := Sanitize(bad, &domain.Billboard{ID: 1})
	assert.Equal(t, ReasonInvalidStartTime, res.Reason)
	assert.Equal(t, 500000.0, res.Price)

	// пересчёт дороже сохранённой цены: не повышаем
	expensive := &domain.Billboard{ID: 1, SlotPricing: domain.SlotPricing{Morning: ptr.Ptr(1e9)}}
	res = Sanitize(suspiciousBooking(150000), expensive)
	assert.False(t, res.Corrected)
	assert.Equal(t, ReasonNotInflated, res.Reason)
	assert.Equal(t, 150000.0, res.Price)
}

func TestSanitize_IdempotentAndNonIncreasing(t *testing.T) {
	billboards := []*domain.Billboard{
		nil,
		{ID: 1},
		{ID: 1, Price: 80000},
		{ID: 1, SlotPricing: domain.SlotPricing{Morning: ptr.Ptr(5e6)}},
	}
	prices := []float64{50, 100000, 100001, 500000, 3e7}

	for _, billboard := range billboards {
		for _, price := range prices {
			b := suspiciousBooking(price)
			b.EndDate = date(2024, 6, 10)

			once := Sanitize(b, billboard)
			assert.LessOrEqual(t, once.Price, price)

			healed := *b
			healed.Price = once.Price
			twice := Sanitize(&healed, billboard)
			assert.Equal(t, once.Price, twice.Price)
			assert.False(t, twice.Corrected)
		}
	}
}

func TestSanitize_CustomThreshold(t *testing.T) {
	policy := Policy{SuspiciousPriceThreshold: 1000}
	res := policy.Sanitize(suspiciousBooking(5000), &domain.Billboard{ID: 1})
	assert.True(t, res.Corrected)
	assert.Equal(t, 333.0, res.Price)
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, InclusiveDays(date(2024, 6, 1), date(2024, 6, 1)))
	assert.Equal(t, 5, InclusiveDays(date(2024, 6, 1), date(2024, 6, 5)))
	// порядок дат не важен
	assert.Equal(t, 5, InclusiveDays(date(2024, 6, 5), date(2024, 6, 1)))
	// время суток отбрасывается
	assert.Equal(t, 2, InclusiveDays(time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC)))
}

func TestBookingPrice(t *testing.T) {
	b := suspiciousBooking(0)
	b.VideoDuration = nil
	b.Reputation = nil
	b.EndDate = date(2024, 6, 3)

	price, err := DefaultPolicy().BookingPrice(b, &domain.Billboard{ID: 1})
	require.NoError(t, err)
	// значения по умолчанию 15 и 40, три дня
	assert.Equal(t, 1000.0, price)
}

func TestSanitize_StoredZeroFallsBackToDefaults(t *testing.T) {
	billboard := &domain.Billboard{ID: 1}

	zeroDuration := suspiciousBooking(500000)
	zeroDuration.VideoDuration = ptr.Ptr(0)
	res := Sanitize(zeroDuration, billboard)
	assert.True(t, res.Corrected)
	assert.Equal(t, 333.0, res.Price)

	zeroReputation := suspiciousBooking(500000)
	zeroReputation.Reputation = ptr.Ptr(0)
	res = Sanitize(zeroReputation, billboard)
	assert.True(t, res.Corrected)
	assert.Equal(t, 333.0, res.Price)
}
