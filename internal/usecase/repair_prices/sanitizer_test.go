package repair_prices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/internal/service/sanitizer"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

// priceStore хранилище бронирований для связки с настоящим sanitizer
type priceStore struct {
	mock.Mock
}

func (m *priceStore) ListSuspicious(ctx context.Context, threshold float64, afterID int64, limit int) ([]*domain.Booking, error) {
	args := m.Called(ctx, threshold, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *priceStore) UpdatePrice(ctx context.Context, id int64, newPrice float64) (bool, error) {
	args := m.Called(ctx, id, newPrice)
	return args.Bool(0), args.Error(1)
}

// persisted цены, переданные в UpdatePrice, по id бронирования
func (m *priceStore) persisted() map[int64]float64 {
	out := make(map[int64]float64)
	for _, call := range m.Calls {
		if call.Method == "UpdatePrice" {
			out[call.Arguments.Get(1).(int64)] = call.Arguments.Get(2).(float64)
		}
	}
	return out
}

type billboardStore struct {
	mock.Mock
}

func (m *billboardStore) GetByID(ctx context.Context, id int64) (*domain.Billboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billboard), args.Error(1)
}

func newBillboardStore() *billboardStore {
	s := &billboardStore{}
	s.On("GetByID", mock.Anything, int64(1)).Return(&domain.Billboard{ID: 1}, nil)
	s.On("GetByID", mock.Anything, int64(2)).Return(nil, billboardRepo.ErrBillboardNotFound)
	s.On("GetByID", mock.Anything, int64(3)).Return(&domain.Billboard{
		ID:          3,
		SlotPricing: domain.SlotPricing{Evening: ptr.Ptr(43200.0)},
	}, nil)
	return s
}

func suspicious() []*domain.Booking {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	b := func(id, billboardID int64, start, end int, startTime string, duration, reps int, price float64) *domain.Booking {
		return &domain.Booking{
			ID:            id,
			BillboardID:   billboardID,
			StartDate:     day(start),
			EndDate:       day(end),
			StartTime:     types.TimeString(startTime),
			VideoDuration: ptr.Ptr(duration),
			Reputation:    ptr.Ptr(reps),
			Price:         price,
			Status:        domain.StatusConfirmed,
		}
	}

	return []*domain.Booking{
		b(1, 1, 1, 1, "08:00", 15, 40, 500000),    // запасная цена слота: 333
		b(2, 2, 1, 1, "08:00", 15, 40, 200000),    // щита нет
		b(3, 1, 1, 1, "noon", 15, 40, 300000),     // битое время
		b(4, 1, 1, 10, "09:30", 60, 400, 150000),  // 133333
		b(5, 3, 1, 2, "19:00", 30, 80, 120000),    // вечерний слот: 9600
		b(6, 1, 1, 30, "10:00", 120, 400, 100001), // пересчёт дороже, цена не растёт
	}
}

func TestExecute_MatchesInlineHeal(t *testing.T) {
	ctx := context.Background()
	policy := pricing.DefaultPolicy()

	// Исправление при чтении
	inlineStore := &priceStore{}
	inlineStore.On("UpdatePrice", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	inline := sanitizer.NewService(inlineStore, newBillboardStore(), policy, nil, nopLogger{})

	inlinePrices := make(map[int64]float64)
	for _, b := range suspicious() {
		inlinePrices[b.ID] = inline.Heal(ctx, b).Price
	}

	// Пакетное исправление
	batchStore := &priceStore{}
	batchStore.On("ListSuspicious", ctx, 100000.0, int64(0), 10).Return(suspicious(), nil).Once()
	batchStore.On("UpdatePrice", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	batch := sanitizer.NewService(batchStore, newBillboardStore(), policy, nil, nopLogger{})

	summary, err := NewUseCase(batchStore, batch, policy, nopLogger{}).Execute(ctx, &Request{BatchSize: 10})
	require.NoError(t, err)

	want := map[int64]float64{1: 333, 4: 133333, 5: 9600}
	assert.Equal(t, want, inlineStore.persisted())
	assert.Equal(t, inlineStore.persisted(), batchStore.persisted())

	batchPrices := make(map[int64]float64)
	for _, b := range suspicious() {
		batchPrices[b.ID] = b.Price
		if p, ok := batchStore.persisted()[b.ID]; ok {
			batchPrices[b.ID] = p
		}
	}
	assert.Equal(t, inlinePrices, batchPrices)

	assert.Equal(t, 6, summary.Scanned)
	assert.Equal(t, 3, summary.Corrected)
	assert.Equal(t, 1, summary.ByReason[pricing.ReasonBillboardMissing])
	assert.Equal(t, 1, summary.ByReason[pricing.ReasonInvalidStartTime])
	assert.Equal(t, 1, summary.ByReason[pricing.ReasonNotInflated])
}
