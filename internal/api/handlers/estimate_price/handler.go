package estimate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardService/internal/api/handlers"
	estimatePrice "github.com/m04kA/SMC-BillboardService/internal/usecase/estimate_price"
)

const (
	msgInvalidBillboardID = "некорректный ID щита"
	msgInvalidParams      = "некорректные параметры запроса"
	msgNotFound           = "щит не найден"
)

type Handler struct {
	useCase EstimatePriceUseCase
	logger  Logger
}

func NewHandler(useCase EstimatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/billboards/{billboardId}/price-estimate
// Query params: startTime (required, HH:MM), videoDuration, reputation, days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	billboardID, err := strconv.ParseInt(mux.Vars(r)["billboardId"], 10, 64)
	if err != nil || billboardID <= 0 {
		h.logger.Warn("GET /billboards/{id}/price-estimate - Invalid billboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillboardID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(billboardID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /billboards/{id}/price-estimate - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, estimatePrice.ErrBillboardNotFound):
			h.logger.Warn("GET /billboards/{id}/price-estimate - Billboard not found: billboard_id=%d", billboardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, estimatePrice.ErrInvalidInput):
			h.logger.Warn("GET /billboards/{id}/price-estimate - Invalid params: billboard_id=%d, error=%v", billboardID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /billboards/{id}/price-estimate - Failed to estimate price: billboard_id=%d, error=%v",
				billboardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /billboards/{id}/price-estimate - Estimated: billboard_id=%d, slot=%s, price=%.2f",
		billboardID, result.Slot, result.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
