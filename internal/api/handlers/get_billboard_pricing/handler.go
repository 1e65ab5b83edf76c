package get_billboard_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardService/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardService/internal/service/billboards"
)

const (
	msgInvalidBillboardID = "некорректный ID щита"
	msgNotFound           = "щит не найден"
)

type Handler struct {
	service BillboardService
	logger  Logger
}

func NewHandler(service BillboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/billboards/{billboardId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	billboardID, err := strconv.ParseInt(mux.Vars(r)["billboardId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /billboards/{id}/pricing - Invalid billboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillboardID)
		return
	}

	result, err := h.service.GetPricing(r.Context(), billboardID)
	if err != nil {
		if errors.Is(err, billboards.ErrBillboardNotFound) {
			h.logger.Warn("GET /billboards/{id}/pricing - Billboard not found: billboard_id=%d", billboardID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /billboards/{id}/pricing - Failed to get pricing: billboard_id=%d, error=%v",
			billboardID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /billboards/{id}/pricing - Pricing retrieved successfully: billboard_id=%d", billboardID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
