package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	billboardRepo "github.com/m04kA/SMC-BillboardService/internal/infra/storage/billboard"
	"github.com/m04kA/SMC-BillboardService/pkg/ptr"
	"github.com/m04kA/SMC-BillboardService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetOverlapping(ctx context.Context, billboardID int64, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, billboardID, from, to, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockBillboardRepo struct {
	mock.Mock
}

func (m *mockBillboardRepo) GetByID(ctx context.Context, id int64) (*domain.Billboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Billboard), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, start, end time.Time, startTime types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		BillboardID: 1,
		StartDate:   start,
		EndDate:     end,
		StartTime:   startTime,
		Status:      domain.StatusConfirmed,
	}
}

func setup() (*UseCase, *mockBookingRepo, *mockBillboardRepo) {
	bookings := &mockBookingRepo{}
	billboards := &mockBillboardRepo{}
	return NewUseCase(bookings, billboards, time.UTC, nopLogger{}), bookings, billboards
}

func TestExecute_AggregatesUsage(t *testing.T) {
	uc, bookings, billboards := setup()
	ctx := context.Background()

	billboards.On("GetByID", ctx, int64(1)).Return(&domain.Billboard{ID: 1}, nil)

	long := booking(1, date(1), date(5), "08:00")
	evening := booking(2, date(3), date(3), "19:15")
	evening.VideoDuration = ptr.Ptr(30)
	evening.Reputation = ptr.Ptr(120)
	broken := booking(3, date(2), date(4), "late")
	// не пересекается с днём, хотя хранилище вернуло его
	stale := booking(4, date(6), date(7), "08:00")

	bookings.On("GetOverlapping", ctx, int64(1), date(3), date(3), domain.OccupyingStatuses).
		Return([]*domain.Booking{long, evening, broken, stale}, nil)

	resp, err := uc.Execute(ctx, &Request{BillboardID: 1, Date: date(3)})
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, int64(600), resp.SlotUsage.Morning)
	assert.Equal(t, int64(3600), resp.SlotUsage.Evening)
	assert.Zero(t, resp.SlotUsage.Afternoon)
	assert.Zero(t, resp.SlotUsage.Night)
	assert.Equal(t, int64(21600), resp.SlotCapacity)
	assert.Equal(t, int64(21000), resp.RemainingCapacity.Morning)
	assert.Equal(t, int64(21600), resp.RemainingCapacity.Night)

	assert.Equal(t, 15, resp.Bookings[0].VideoDuration)
	assert.Equal(t, 40, resp.Bookings[0].Reputation)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestExecute_BillboardMissingReturnsEmpty(t *testing.T) {
	uc, bookings, billboards := setup()
	ctx := context.Background()

	billboards.On("GetByID", ctx, int64(1)).Return(nil, billboardRepo.ErrBillboardNotFound)

	resp, err := uc.Execute(ctx, &Request{BillboardID: 1, Date: date(3)})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, domain.SlotUsage{}, resp.SlotUsage)
	assert.Equal(t, int64(21600), resp.RemainingCapacity.Morning)
	bookings.AssertNotCalled(t, "GetOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Errors(t *testing.T) {
	uc, bookings, billboards := setup()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{BillboardID: 0, Date: date(3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{BillboardID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	billboards.On("GetByID", ctx, int64(1)).Return(&domain.Billboard{ID: 1}, nil)
	bookings.On("GetOverlapping", ctx, int64(1), date(3), date(3), domain.OccupyingStatuses).
		Return(nil, errors.New("timeout"))

	_, err = uc.Execute(ctx, &Request{BillboardID: 1, Date: date(3)})
	assert.ErrorIs(t, err, ErrInternal)
}
