package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-BillboardService/internal/usecase/check_availability"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkAvailability.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc CheckAvailabilityUseCase, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/billboards/{billboardId}/availability", NewHandler(uc, nopLogger{}).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, &checkAvailability.Request{BillboardID: 5, Date: day}).
		Return(&checkAvailability.Response{
			BillboardID: 5,
			Date:        day,
			Bookings: []checkAvailability.BookingView{{
				ID:            1,
				StartDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:       time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
				StartTime:     "08:00",
				Status:        "confirmed",
				VideoDuration: 15,
				Reputation:    40,
			}},
			SlotUsage:         domain.SlotUsage{Morning: 600},
			SlotCapacity:      21600,
			RemainingCapacity: domain.SlotUsage{Morning: 21000, Afternoon: 21600, Evening: 21600, Night: 21600},
		}, nil)

	w := serve(uc, "/billboards/5/availability?date=2024-06-03")
	require.Equal(t, http.StatusOK, w.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "2024-06-03", body.Date)
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "2024-06-01", body.Bookings[0].StartDate)
	assert.Equal(t, int64(600), body.SlotUsage.Morning)
	assert.Equal(t, int64(21600), body.SlotCapacity)
	assert.Equal(t, int64(21000), body.RemainingCapacity.Morning)
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &mockUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, "/billboards/abc/availability?date=2024-06-03").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/billboards/5/availability").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/billboards/5/availability?date=03.06.2024").Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, checkAvailability.ErrInternal)

	w := serve(uc, "/billboards/5/availability?date=2024-06-03")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
