package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BillboardService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"billboardId": 2,
	"startDate": "2024-06-01",
	"endDate": "2024-06-02",
	"startTime": "08:00",
	"endTime": "10:00",
	"contentType": "video",
	"videoDuration": 30,
	"price": 1332
}`

func post(uc CreateBookingUseCase, body string, userID string) *httptest.ResponseRecorder {
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.UserID == 100 &&
			r.BillboardID == 2 &&
			r.EndDate.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) &&
			r.StartTime == "08:00" &&
			*r.VideoDuration == 30 &&
			r.Reputation == nil
	})).Return(&createBooking.Response{
		ID:          9,
		BillboardID: 2,
		UserID:      100,
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "08:00",
		Slot:        "morning",
		Price:       1332,
		ServerPrice: 1333,
		Status:      "pending",
	}, nil)

	w := post(uc, validBody, "100")
	require.Equal(t, http.StatusCreated, w.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.ID)
	assert.Equal(t, "morning", body.Slot)
	assert.Equal(t, "2024-06-02", body.EndDate)
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"billboard not found", createBooking.ErrBillboardNotFound, http.StatusNotFound},
		{"bad dates", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"bad input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"price mismatch", createBooking.ErrPriceMismatch, http.StatusUnprocessableEntity},
		{"slot saturated", createBooking.ErrSlotSaturated, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.wantCode, post(uc, validBody, "100").Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &mockUseCase{}

	assert.Equal(t, http.StatusUnauthorized, post(uc, validBody, "").Code)
	assert.Equal(t, http.StatusBadRequest, post(uc, `{"billboardId": "x"}`, "100").Code)

	w := post(uc, strings.Replace(validBody, `"08:00"`, `"8am"`, 1), "100")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidTime)

	w = post(uc, strings.Replace(validBody, `"2024-06-01"`, `"01.06.2024"`, 1), "100")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidDate)

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
