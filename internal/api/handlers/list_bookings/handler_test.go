package list_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/service/bookings"
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/bookings", NewHandler(svc, nopLogger{}).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("ListBookings", mock.Anything, mock.MatchedBy(func(req *models.ListBookingsRequest) bool {
		return req.BillboardID != nil && *req.BillboardID == 3 && req.Limit == 20
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, Price: 333}}}, nil)

	w := serve(svc, "/admin/bookings?billboardId=3&limit=20")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, 333.0, body.Bookings[0].Price)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown status", fmt.Errorf("%w: status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListBookings", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.code, serve(svc, "/admin/bookings?status=whatever").Code)
		})
	}
}

func TestHandle_BadQuery(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/bookings?limit=many").Code)
	svc.AssertNotCalled(t, "ListBookings", mock.Anything, mock.Anything)
}
