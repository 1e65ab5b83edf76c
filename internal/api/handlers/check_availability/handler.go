package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-BillboardService/internal/usecase/check_availability"
)

const (
	msgInvalidBillboardID = "некорректный ID щита"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/billboards/{billboardId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем billboardId из URL
	billboardID, err := strconv.ParseInt(mux.Vars(r)["billboardId"], 10, 64)
	if err != nil || billboardID <= 0 {
		h.logger.Warn("GET /billboards/{id}/availability - Invalid billboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillboardID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /billboards/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(billboardID, dateStr)
	if err != nil {
		h.logger.Warn("GET /billboards/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /billboards/{id}/availability - Invalid params: billboard_id=%d, error=%v", billboardID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /billboards/{id}/availability - Failed to check availability: billboard_id=%d, error=%v",
				billboardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /billboards/{id}/availability - Availability retrieved: billboard_id=%d, date=%s, bookings=%d",
		billboardID, dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
