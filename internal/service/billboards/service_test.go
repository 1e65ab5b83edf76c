package billboards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/internal/pricing"
	"github.com/m04kA/SMC-BillboardService/internal/service/billboards/models"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Billboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billboard), args.Error(1)
}

func (m *mockRepo) UpdateSlotPricing(ctx context.Context, id int64, p domain.SlotPricing) error {
	return m.Called(ctx, id, p).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetPricing_EffectivePrices(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, pricing.DefaultPolicy(), nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Billboard{
		ID:          1,
		Type:        domain.BillboardDigital,
		Price:       8000,
		SlotPricing: domain.SlotPricing{Morning: ptr.Ptr(20000.0)},
	}, nil)

	resp, err := svc.GetPricing(ctx, 1)
	require.NoError(t, err)
	assert.False(t, resp.IsComplete)
	assert.Equal(t, 20000.0, *resp.Effective.Morning)
	assert.Equal(t, 8000.0, *resp.Effective.Night)
	assert.Nil(t, resp.SlotPricing.Night)
}

func TestGetPricing_NotFound(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, pricing.DefaultPolicy(), nopLogger{})

	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, billboardRepo.ErrBillboardNotFound)

	_, err := svc.GetPricing(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBillboardNotFound)
}

func TestUpdatePricing(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, pricing.DefaultPolicy(), nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Billboard{ID: 1, OwnerID: 50, Type: domain.BillboardDigital}, nil)
	req := &models.UpdatePricingRequest{
		UserID: 50,
		SlotPrices: models.SlotPrices{
			Morning:   ptr.Ptr(10000.0),
			Afternoon: ptr.Ptr(12000.0),
			Evening:   ptr.Ptr(18000.0),
			Night:     ptr.Ptr(4000.0),
		},
	}
	repo.On("UpdateSlotPricing", ctx, int64(1), req.ToDomain()).Return(nil)

	resp, err := svc.UpdatePricing(ctx, 1, req)
	require.NoError(t, err)
	assert.True(t, resp.IsComplete)
	assert.Equal(t, 4000.0, *resp.Effective.Night)
	repo.AssertExpectations(t)
}

func TestUpdatePricing_Rejections(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, pricing.DefaultPolicy(), nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(1)).Return(&domain.Billboard{ID: 1, OwnerID: 50}, nil)

	_, err := svc.UpdatePricing(ctx, 1, &models.UpdatePricingRequest{UserID: 51})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.UpdatePricing(ctx, 1, &models.UpdatePricingRequest{
		UserID:     50,
		SlotPrices: models.SlotPrices{Morning: ptr.Ptr(-1.0)},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.On("UpdateSlotPricing", ctx, int64(1), mock.Anything).Return(errors.New("boom"))
	_, err = svc.UpdatePricing(ctx, 1, &models.UpdatePricingRequest{UserID: 50})
	assert.ErrorIs(t, err, ErrInternal)
}
