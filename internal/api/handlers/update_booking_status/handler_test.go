package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BillboardService/internal/service/bookings"
	"github.com/m04kA/SMC-BillboardService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, path, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, int64(12), &models.UpdateStatusRequest{Status: "confirmed"}).
		Return(&models.BookingResponse{ID: 12, Status: "confirmed"}, nil)

	w := serve(svc, "/admin/bookings/12/status", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"unknown status", fmt.Errorf("%w: status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"cancelled to confirmed", fmt.Errorf("%w: cancelled -> confirmed", bookings.ErrInvalidTransition), http.StatusConflict},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateStatus", mock.Anything, int64(12), mock.Anything).Return(nil, tt.err)

			w := serve(svc, "/admin/bookings/12/status", `{"status":"confirmed"}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandle_BadRequest(t *testing.T) {
	svc := &mockService{}

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/bookings/abc/status", `{"status":"confirmed"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/bookings/12/status", `{`).Code)

	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
