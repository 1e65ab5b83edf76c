package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

func TestClassifySlot_Partition(t *testing.T) {
	counts := map[domain.SlotName]int{}
	for hour := 0; hour < 24; hour++ {
		slot := ClassifySlot(hour)
		require.True(t, slot.IsValid(), "hour %d", hour)
		counts[slot]++
	}

	// четыре слота по шесть часов, без пропусков
	assert.Len(t, counts, 4)
	for slot, n := range counts {
		assert.Equal(t, 6, n, "slot %s", slot)
	}
}

func TestClassifySlot_Boundaries(t *testing.T) {
	tests := []struct {
		hour int
		want domain.SlotName
	}{
		{0, domain.SlotNight},
		{5, domain.SlotNight},
		{6, domain.SlotMorning},
		{11, domain.SlotMorning},
		{12, domain.SlotAfternoon},
		{17, domain.SlotAfternoon},
		{18, domain.SlotEvening},
		{23, domain.SlotEvening},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifySlot(tt.hour), "hour %d", tt.hour)
	}
}

func TestClassifyStartTime(t *testing.T) {
	slot, err := ClassifyStartTime("08:00")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotMorning, slot)

	slot, err = ClassifyStartTime("23:59")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotEvening, slot)

	for _, bad := range []types.TimeString{"", "8am", "25:00", "12"} {
		_, err := ClassifyStartTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveSlotPrice(t *testing.T) {
	digital := &domain.Billboard{
		Type:  domain.BillboardDigital,
		Price: 5000,
		SlotPricing: domain.SlotPricing{
			Morning:   ptr.Ptr(20000.0),
			Afternoon: ptr.Ptr(0.0),
			Evening:   ptr.Ptr(30000.0),
		},
	}

	assert.Equal(t, 20000.0, ResolveSlotPrice(digital, domain.SlotMorning))
	assert.Equal(t, 30000.0, ResolveSlotPrice(digital, domain.SlotEvening))
	// нулевая цена слота и отсутствующий слот откатываются на плоскую цену
	assert.Equal(t, 5000.0, ResolveSlotPrice(digital, domain.SlotAfternoon))
	assert.Equal(t, 5000.0, ResolveSlotPrice(digital, domain.SlotNight))

	static := &domain.Billboard{Type: domain.BillboardStatic}
	assert.Equal(t, DefaultFallbackSlotPrice, ResolveSlotPrice(static, domain.SlotMorning))
	assert.Equal(t, DefaultFallbackSlotPrice, ResolveSlotPrice(nil, domain.SlotNight))

	custom := Policy{FallbackSlotPrice: 9000}
	assert.Equal(t, 9000.0, custom.ResolveSlotPrice(static, domain.SlotMorning))
}
