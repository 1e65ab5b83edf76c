package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/api/middleware"
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings"
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
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

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/users/{userId}/bookings", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "42")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_ReturnsList(t *testing.T) {
	svc := &mockService{}
	status := "confirmed"
	svc.On("GetUserBookings", mock.Anything, &models.GetUserBookingsRequest{
		RequesterID: 42,
		UserID:      42,
		Status:      &status,
	}).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{
		{ID: 1, Price: 333},
		{ID: 2, Price: 9600},
	}}, nil)

	w := serve(svc, "/users/42/bookings?status=confirmed")
	require.Equal(t, http.StatusOK, w.Code)

	var body []models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, 333.0, body[0].Price)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"other user", bookings.ErrAccessDenied, http.StatusForbidden},
		{"unknown status", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.code, serve(svc, "/users/7/bookings").Code)
		})
	}
}

func TestHandle_InvalidUserID(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/users/me/bookings").Code)
	svc.AssertNotCalled(t, "GetUserBookings", mock.Anything, mock.Anything)
}
